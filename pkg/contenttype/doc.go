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

// Package contenttype resolves the configuration of a custom content type
// into the registration arguments handed to the host, and provides the
// hook behavior the gateway package binds to host events.
//
// # Configuration
//
// A Config is usually decoded from YAML:
//
//	args:
//	  hierarchical: false
//	  taxonomies: genre, author
//	pluralName: Books
//	singularName: Book
//	additionalSupports:
//	  thumbnail: true
//	  comments: false
//	columnsFilter:
//	  cb: true
//	  title: Book Title
//	columnsData:
//	  isbn:
//	    callback: sprintf
//	    args: ["ISBN #%d"]
//	sortableColumns: [title, isbn]
//	addFeed: true
//
// # Resolution
//
// Labels: a default set built from the plural and singular names, with any
// labels under args.labels overriding individual keys.
//
// Supports: explicit args.supports are used verbatim. Otherwise the
// baseline content type's features are merged with additionalSupports
// (false excludes a feature). Hierarchical types get page-attributes.
//
// Taxonomies: a comma separated string becomes a list.
//
// # Lifecycle
//
// New validates the identifier and configuration and acquires the
// identifier in the host registry; Close releases it. Register submits the
// resolved arguments to the host and may be called any number of times.
package contenttype
