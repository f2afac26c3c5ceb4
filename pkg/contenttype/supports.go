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

// SupportsResolver computes the enabled features of a content type.
type SupportsResolver struct {
	provider     host.SupportsProvider
	baselineType string
	last         []string
}

// NewSupportsResolver returns a resolver reading the baseline feature set of
// baselineType from provider.
func NewSupportsResolver(provider host.SupportsProvider, baselineType string) *SupportsResolver {
	if baselineType == "" {
		baselineType = defaults.BaselineContentType
	}
	return &SupportsResolver{provider: provider, baselineType: baselineType}
}

// Resolve returns the ordered feature names for args.
//
// Explicit args.Supports are used verbatim and additional is ignored.
// Otherwise the baseline feature set is merged with additional: an existing
// feature keeps its position and takes the new flag, a new one is appended,
// and disabled features are dropped. In both paths hierarchical types get
// page-attributes appended when it is missing.
func (r *SupportsResolver) Resolve(args *Args, additional Features) []string {
	var supports []string
	if args.Supports != nil {
		supports = slices.Clone(args.Supports)
	} else {
		supports = r.byConfiguration(additional)
	}

	if args.Hierarchical && !slices.Contains(supports, defaults.PageAttributesSupport) {
		supports = append(supports, defaults.PageAttributesSupport)
	}

	r.last = supports
	return slices.Clone(supports)
}

// Last returns the result of the most recent Resolve call.
func (r *SupportsResolver) Last() []string {
	return slices.Clone(r.last)
}

func (r *SupportsResolver) byConfiguration(additional Features) []string {
	baseline := r.provider.BaselineSupports(r.baselineType)

	merged := make(Features, 0, len(baseline)+len(additional))
	index := make(map[string]int, len(baseline)+len(additional))
	put := func(f Feature) {
		if i, ok := index[f.Name]; ok {
			merged[i].Enabled = f.Enabled
			return
		}
		index[f.Name] = len(merged)
		merged = append(merged, f)
	}

	for _, name := range baseline {
		put(Feature{Name: name, Enabled: true})
	}
	for _, f := range additional {
		put(f)
	}

	out := make([]string, 0, len(merged))
	for _, f := range merged {
		if f.Enabled && f.Name != "" {
			out = append(out, f.Name)
		}
	}
	return out
}
