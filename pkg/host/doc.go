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

// Package host defines what the content type packages consume from the
// content management host, and ships Memory, an in-process host.
//
// The contract is split by capability so callers can depend on the narrowest
// surface: Registrar (registration call), SupportsProvider (feature sets of
// existing types), Registry (the process-wide table of known types), Events
// (lifecycle subscriptions) and Router (routing rule regeneration).
//
// Per-type hooks are namespaced by the content type identifier:
//
//	manage_<id>_posts_columns         header row filter
//	manage_<id>_posts_custom_column   cell render
//	manage_edit-<id>_sortable_columns sortable columns filter
//
// Memory dispatches those events on demand (Init, BuildColumns, RenderColumn,
// BuildSortableColumns, ParseRequest), which is what the admin server and
// the tests drive.
package host
