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

package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Flush metrics
	flushTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ctypes_flush_total",
			Help: "Total number of rewrite rule flush requests by result",
		},
		[]string{"result"},
	)
	flushDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ctypes_flush_duration_seconds",
			Help:    "Duration of rewrite rule flushes in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Provider state
	definitionsTracked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ctypes_definitions_tracked",
			Help: "Current number of content type definitions tracked by providers",
		},
	)
	definitionsPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ctypes_definitions_pending",
			Help: "Current number of manifest entries waiting for activation",
		},
	)
)
