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

// Package defaults provides centralized constants for the content type tooling.
//
// It holds timeout values for the admin server and ConfigMap access, the
// flush limiter settings, and the host vocabulary (baseline content type,
// query variable names, the checkbox column) shared by the core and the
// reference host.
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.FlushHandlerTimeout)
//	defer cancel()
package defaults
