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

// Package header provides the common document header of manifests and
// exported registration sets.
//
// The header follows Kubernetes resource conventions:
//
//	kind: RegistrationSet
//	apiVersion: contenttypes.cmskit.dev/v1
//	metadata:
//	  timestamp: "2026-01-02T10:30:00Z"
//	  version: v1.0.0
//
// Documents embed Header and initialize it in place:
//
//	var set RegistrationSet
//	set.Init(header.KindRegistrationSet, header.APIVersionV1, version)
//
// Init stamps metadata.timestamp (RFC 3339, UTC) and, when non-empty,
// metadata.version.
package header
