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
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cmskit/contenttypes/pkg/defaults"
	"github.com/cmskit/contenttypes/pkg/errors"
	"github.com/cmskit/contenttypes/pkg/host"
	"github.com/cmskit/contenttypes/pkg/serializer"
)

// handleContentTypes handles GET /v1/content-types
func (s *Server) handleContentTypes(w http.ResponseWriter, _ *http.Request) {
	ids := s.registry.ContentTypes()
	resp := ContentTypesResponse{
		ContentTypes: make([]ContentTypeInfo, 0, len(ids)),
		Pending:      s.registry.Pending(),
	}
	for _, id := range ids {
		args, ok := s.host.Arguments(id)
		resp.ContentTypes = append(resp.ContentTypes, ContentTypeInfo{
			ID:         id,
			Registered: ok,
			Args:       args,
		})
	}
	if resp.Pending == nil {
		resp.Pending = []string{}
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// handleColumns handles GET /v1/content-types/{id}/columns
func (s *Server) handleColumns(w http.ResponseWriter, r *http.Request) {
	id, ok := s.contentType(w, r)
	if !ok {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, ColumnsResponse{
		ContentType: id,
		Columns:     s.host.BuildColumns(id),
	})
}

// handleSortable handles GET /v1/content-types/{id}/sortable
func (s *Server) handleSortable(w http.ResponseWriter, r *http.Request) {
	id, ok := s.contentType(w, r)
	if !ok {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, SortableResponse{
		ContentType: id,
		Sortable:    s.host.BuildSortableColumns(id),
	})
}

// handleRender handles GET /v1/content-types/{id}/render?column=&record=
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	id, ok := s.contentType(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	column := q.Get("column")
	if column == "" {
		WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"column query parameter is required", false, nil)
		return
	}
	recordID, err := strconv.ParseInt(q.Get("record"), 10, 64)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"record query parameter must be an integer", false,
			map[string]any{"record": q.Get("record")})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.RenderHandlerTimeout)
	defer cancel()

	var buf bytes.Buffer
	if err := s.host.RenderColumn(ctx, &buf, id, column, recordID); err != nil {
		WriteErrorFromErr(w, r, err, "failed to render column", map[string]any{"contentType": id})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, RenderResponse{
		ContentType: id,
		Column:      column,
		RecordID:    recordID,
		Output:      buf.String(),
	})
}

// handleQuery handles GET /v1/query. Every query parameter becomes a query
// var; repeated parameters become lists.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	in := queryVarsFromValues(r.URL.Query())
	serializer.RespondJSON(w, http.StatusOK, QueryResponse{
		Input:     in,
		QueryVars: s.host.ParseRequest(in),
	})
}

// handleFlush handles POST /v1/flush
func (s *Server) handleFlush(w http.ResponseWriter, r *http.Request) {
	retryAfter := strconv.Itoa(max(int(s.config.FlushInterval/time.Second), 1))
	if s.flushLimit != nil && !s.flushLimit.Allow() {
		rateLimitRejects.Inc()
		w.Header().Set("Retry-After", retryAfter)
		WriteError(w, r, http.StatusTooManyRequests, errors.ErrCodeRateLimitExceeded,
			"rewrite rules were flushed recently, try again later", true, map[string]any{
				"interval": s.config.FlushInterval.String(),
				"burst":    s.config.FlushBurst,
			})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.FlushHandlerTimeout)
	defer cancel()

	if err := s.registry.FlushRewriteRules(ctx); err != nil {
		if errors.Is(err, errors.ErrCodeRateLimitExceeded) {
			w.Header().Set("Retry-After", retryAfter)
		}
		WriteErrorFromErr(w, r, err, "failed to flush rewrite rules", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, FlushResponse{
		Status:       "flushed",
		ContentTypes: s.registry.ContentTypes(),
		Timestamp:    time.Now().UTC(),
	})
}

// contentType resolves the {id} path value to a managed content type,
// writing a NOT_FOUND response when there is none.
func (s *Server) contentType(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, ok := s.registry.Get(id); !ok {
		WriteError(w, r, http.StatusNotFound, errors.ErrCodeNotFound,
			"content type not found", false, map[string]any{"id": id})
		return "", false
	}
	return id, true
}

func queryVarsFromValues(values url.Values) host.QueryVars {
	qv := make(host.QueryVars, len(values))
	for k, v := range values {
		switch len(v) {
		case 0:
		case 1:
			qv[k] = v[0]
		default:
			qv[k] = append([]string(nil), v...)
		}
	}
	return qv
}
