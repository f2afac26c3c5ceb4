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
	"time"

	"github.com/cmskit/contenttypes/pkg/host"
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// ContentTypeInfo describes one managed content type.
type ContentTypeInfo struct {
	ID         string                      `json:"id"`
	Registered bool                        `json:"registered"`
	Args       *host.RegistrationArguments `json:"args,omitempty"`
}

// ContentTypesResponse is returned by GET /v1/content-types.
type ContentTypesResponse struct {
	ContentTypes []ContentTypeInfo `json:"contentTypes"`
	Pending      []string          `json:"pending"`
}

// ColumnsResponse is returned by GET /v1/content-types/{id}/columns.
type ColumnsResponse struct {
	ContentType string        `json:"contentType"`
	Columns     *host.Columns `json:"columns"`
}

// SortableResponse is returned by GET /v1/content-types/{id}/sortable.
type SortableResponse struct {
	ContentType string               `json:"contentType"`
	Sortable    host.SortableColumns `json:"sortable"`
}

// RenderResponse carries the output of one rendered cell.
type RenderResponse struct {
	ContentType string `json:"contentType"`
	Column      string `json:"column"`
	RecordID    int64  `json:"recordId"`
	Output      string `json:"output"`
}

// QueryResponse shows query vars before and after the request filters ran.
type QueryResponse struct {
	Input     host.QueryVars `json:"input"`
	QueryVars host.QueryVars `json:"queryVars"`
}

// FlushResponse is returned by POST /v1/flush.
type FlushResponse struct {
	Status       string    `json:"status"`
	ContentTypes []string  `json:"contentTypes"`
	Timestamp    time.Time `json:"timestamp"`
}
