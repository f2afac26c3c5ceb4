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

package defaults

// Host vocabulary shared by the core and the reference host.
const (
	// BaselineContentType is the builtin type whose supports seed every
	// content type that does not list its supports explicitly.
	BaselineContentType = "post"

	// PageAttributesSupport is appended to hierarchical content types.
	PageAttributesSupport = "page-attributes"

	// QueryVarFeed is present in the query vars of feed requests.
	QueryVarFeed = "feed"

	// QueryVarPostType holds the content types a query selects.
	QueryVarPostType = "post_type"

	// CheckboxColumn is the list-table selection column key.
	CheckboxColumn = "cb"

	// CheckboxMarkup is the header cell the host renders for CheckboxColumn.
	CheckboxMarkup = `<input type="checkbox" />`
)
