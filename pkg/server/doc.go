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

// Package server implements the content type admin HTTP API.
//
// The API reports what the host sees for each managed content type: the
// resolved registration arguments, the admin list header row, the sortable
// columns and single rendered cells. It also replays feed query filtering
// and triggers batch registration with a rewrite rule flush.
//
// # Usage
//
//	h := host.NewMemory()
//	p := gateway.NewProvider(h)
//	if err := p.Load(manifest); err != nil {
//	    return err
//	}
//
//	s := server.NewServer(server.NewConfig(), p, h)
//	return s.Start(ctx)
//
// # API Endpoints
//
// GET /v1/content-types - Managed content types and pending manifest entries
//
// GET /v1/content-types/{id}/columns - Admin list header row after column filters
//
// GET /v1/content-types/{id}/sortable - Sortable columns
//
// GET /v1/content-types/{id}/render - One rendered cell
//
//	Query parameters:
//	  - column: column key (required)
//	  - record: record identifier (required, integer)
//
//	Example:
//	  curl "http://localhost:8080/v1/content-types/book/render?column=isbn&record=42"
//
// GET /v1/query - Query vars after the request filters ran
//
//	Example:
//	  curl "http://localhost:8080/v1/query?feed=rss2&post_type=post"
//
// POST /v1/flush - Register every content type and flush rewrite rules
//
//	Flushes are limited by Config.FlushInterval and FlushBurst; a refused
//	flush returns 429 with Retry-After.
//
// GET /health - Health check (for liveness probe)
//
// GET /ready - Readiness check (for readiness probe)
//
// GET /metrics - Prometheus metrics
//
// # Observability
//
// Request ID Tracking:
//
//	All API requests accept an optional X-Request-Id header (UUID format).
//	If not provided, the server generates one automatically.
//	The request ID is returned in the X-Request-Id response header
//	and included in all error responses for tracing.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per window
//	  X-RateLimit-Remaining: Requests remaining in current window
//	  X-RateLimit-Reset: Unix timestamp when window resets
//
//	When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "CONFIGURATION_ERROR",
//	  "message": "callback \"isbn\" of column isbn for content type book cannot be resolved",
//	  "details": {"column": "isbn", "callback": "isbn", "contentType": "book"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-12T12:00:00Z",
//	  "retryable": false
//	}
//
// Error codes:
//   - INVALID_REQUEST: Invalid request parameter (400)
//   - NOT_FOUND: Unknown content type (404)
//   - CONFLICT: Identifier already registered (409)
//   - CONFIGURATION_ERROR: Unresolvable column callback (422)
//   - RATE_LIMIT_EXCEEDED: Too many requests or flushes (429)
//   - SERVICE_UNAVAILABLE: Provider closed (503)
//   - INTERNAL: Server or renderer error (500)
package server
