// Copyright (c) 2025, The cmskit Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cmskit/contenttypes/pkg/serializer"
)

// routes lists the API surface in the order the index reports it.
var routes = []string{
	"GET /v1/content-types",
	"GET /v1/content-types/{id}/columns",
	"GET /v1/content-types/{id}/sortable",
	"GET /v1/content-types/{id}/render",
	"GET /v1/query",
	"POST /v1/flush",
	"GET /health",
	"GET /ready",
	"GET /metrics",
}

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleDefault)

	// System endpoints (no rate limiting)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	// API endpoints with middleware
	mux.HandleFunc("GET /v1/content-types", s.withMiddleware(s.handleContentTypes))
	mux.HandleFunc("GET /v1/content-types/{id}/columns", s.withMiddleware(s.handleColumns))
	mux.HandleFunc("GET /v1/content-types/{id}/sortable", s.withMiddleware(s.handleSortable))
	mux.HandleFunc("GET /v1/content-types/{id}/render", s.withMiddleware(s.handleRender))
	mux.HandleFunc("GET /v1/query", s.withMiddleware(s.handleQuery))
	mux.HandleFunc("POST /v1/flush", s.withMiddleware(s.handleFlush))

	return mux
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.IsReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    routes,
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
