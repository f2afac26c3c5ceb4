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
	"slices"

	"github.com/cmskit/contenttypes/pkg/defaults"
	"github.com/cmskit/contenttypes/pkg/host"
)

// FeedAction is the change applied to the feed post type list.
type FeedAction int

const (
	// FeedUnchanged leaves the query variables as they were.
	FeedUnchanged FeedAction = iota
	// FeedAdded added the content type to the post type list.
	FeedAdded
	// FeedRemoved removed the content type from the post type list.
	FeedRemoved
)

// String returns the metric label of the action.
func (a FeedAction) String() string {
	switch a {
	case FeedAdded:
		return "added"
	case FeedRemoved:
		return "removed"
	default:
		return "unchanged"
	}
}

// applyFeedMembership adds id to or removes it from the post_type list of a
// feed request. Non-feed requests are left alone.
//
//	addFeed  listed  action
//	true     no      append id, or seed [post, id] when post_type is not a list
//	false    yes     remove id and reindex
//	         else    nothing
func applyFeedMembership(qv host.QueryVars, id string, addFeed bool) FeedAction {
	if qv == nil || !qv.IsFeed() {
		return FeedUnchanged
	}

	// hasList is recomputed per call and never stored.
	types, hasList := qv.PostTypes()
	index := -1
	if hasList {
		index = slices.Index(types, id)
	}

	switch {
	case addFeed && index < 0:
		if !hasList {
			qv.SetPostTypes([]string{defaults.BaselineContentType, id})
		} else {
			qv.SetPostTypes(append(slices.Clone(types), id))
		}
		return FeedAdded
	case !addFeed && hasList && index >= 0:
		qv.SetPostTypes(slices.Delete(slices.Clone(types), index, index+1))
		return FeedRemoved
	default:
		return FeedUnchanged
	}
}
