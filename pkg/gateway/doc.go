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

// Package gateway binds content type definitions to host events and manages
// the set of definitions loaded from a manifest.
//
// Bind subscribes a Definition to the host:
//
//   - init event: Register (always)
//   - request parse: FilterFeed (always)
//   - list header row: FilterColumns (when columnsFilter is configured)
//   - list cell render: RenderColumnData (when columnsData is configured)
//   - sortable columns: MakeColumnsSortable (when sortableColumns is configured)
//
// A Provider loads a Manifest, constructs and binds a Definition for every
// autoload entry and holds the others until Activate is called. Its
// FlushRewriteRules re-registers every tracked definition and then asks the
// host to regenerate routing rules. Concurrent calls share one execution;
// a caller whose definitions were tracked after that execution started
// flushes again. WithFlushLimit opts in to rate limiting.
//
// RegistrationSet exports the resolved registration arguments of the tracked
// definitions. ValidateManifest checks a manifest against a scratch host and
// reports a result per entry.
//
// Manifest format:
//
//	kind: ContentTypeManifest
//	apiVersion: contenttypes.cmskit.dev/v1
//	contentTypes:
//	  - postTypeName: book
//	    autoload: true
//	    config:
//	      pluralName: Books
//	      singularName: Book
package gateway
