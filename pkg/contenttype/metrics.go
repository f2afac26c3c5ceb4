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

package contenttype

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registration metrics
	registrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ctypes_registrations_total",
			Help: "Total number of content type registrations submitted to the host",
		},
		[]string{"content_type", "result"},
	)

	// Feed membership metrics
	feedActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ctypes_feed_actions_total",
			Help: "Total number of feed requests by applied membership action",
		},
		[]string{"content_type", "action"},
	)

	// Column render metrics
	columnRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ctypes_column_renders_total",
			Help: "Total number of rendered list-table cells",
		},
		[]string{"content_type", "column"},
	)
	columnRenderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ctypes_column_render_errors_total",
			Help: "Total number of list-table cells that failed to render",
		},
		[]string{"content_type", "column", "code"},
	)
)
