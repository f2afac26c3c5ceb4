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

package host

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/cmskit/contenttypes/pkg/defaults"
)

// RegistrationArguments is the resolved structure handed to the host's
// content type registration call.
type RegistrationArguments struct {
	Labels       map[string]string `json:"labels" yaml:"labels"`
	Supports     []string          `json:"supports" yaml:"supports"`
	Hierarchical bool              `json:"hierarchical" yaml:"hierarchical"`
	Taxonomies   []string          `json:"taxonomies,omitempty" yaml:"taxonomies,omitempty"`
	Public       *bool             `json:"public,omitempty" yaml:"public,omitempty"`
	ShowInREST   *bool             `json:"show_in_rest,omitempty" yaml:"show_in_rest,omitempty"`
	HasArchive   *bool             `json:"has_archive,omitempty" yaml:"has_archive,omitempty"`
	MenuIcon     string            `json:"menu_icon,omitempty" yaml:"menu_icon,omitempty"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty"`

	// Extra carries host arguments this package does not interpret.
	Extra map[string]any `json:"extra,omitempty" yaml:",inline"`
}

// Clone returns a deep copy of the arguments.
func (a *RegistrationArguments) Clone() *RegistrationArguments {
	if a == nil {
		return nil
	}
	out := *a
	out.Labels = maps.Clone(a.Labels)
	out.Supports = slices.Clone(a.Supports)
	out.Taxonomies = slices.Clone(a.Taxonomies)
	out.Extra = maps.Clone(a.Extra)
	return &out
}

// QueryVars are the variables the host parsed from a front-end request.
// post_type holds either a single name or a []string.
type QueryVars map[string]any

// Has reports whether key is present.
func (q QueryVars) Has(key string) bool {
	_, ok := q[key]
	return ok
}

// IsFeed reports whether the request is a feed request.
func (q QueryVars) IsFeed() bool {
	return q.Has(defaults.QueryVarFeed)
}

// PostTypes returns post_type when it holds a list. Non-string list elements
// are formatted with fmt.Sprint. The boolean is false when post_type is
// absent or holds a single value.
func (q QueryVars) PostTypes() ([]string, bool) {
	switch v := q[defaults.QueryVarPostType].(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				s = fmt.Sprint(item)
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// SetPostTypes replaces post_type with a list.
func (q QueryVars) SetPostTypes(types []string) {
	q[defaults.QueryVarPostType] = types
}

// Clone returns a copy with post_type lists copied.
func (q QueryVars) Clone() QueryVars {
	out := make(QueryVars, len(q))
	for k, v := range q {
		if list, ok := v.([]string); ok {
			v = slices.Clone(list)
		}
		out[k] = v
	}
	return out
}

// SortableColumns maps a column key to the query orderby value it sorts by.
type SortableColumns map[string]string

// Column is one header cell of the admin list table.
type Column struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// Columns is the ordered header row of the admin list table.
// Setting an existing key keeps its position.
type Columns struct {
	keys   []string
	labels map[string]string
}

// NewColumns builds a header row from columns in order.
func NewColumns(cols ...Column) *Columns {
	c := &Columns{labels: make(map[string]string, len(cols))}
	for _, col := range cols {
		c.Set(col.Key, col.Label)
	}
	return c
}

// Set adds key or overrides its label in place.
func (c *Columns) Set(key, label string) {
	if c.labels == nil {
		c.labels = make(map[string]string)
	}
	if _, ok := c.labels[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.labels[key] = label
}

// Get returns the label of key.
func (c *Columns) Get(key string) (string, bool) {
	label, ok := c.labels[key]
	return label, ok
}

// Keys returns the column keys in order.
func (c *Columns) Keys() []string {
	return slices.Clone(c.keys)
}

// Len returns the number of columns.
func (c *Columns) Len() int {
	return len(c.keys)
}

// List returns the columns in order.
func (c *Columns) List() []Column {
	out := make([]Column, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, Column{Key: k, Label: c.labels[k]})
	}
	return out
}

// Clone returns an independent copy.
func (c *Columns) Clone() *Columns {
	return NewColumns(c.List()...)
}

// MarshalJSON encodes the row as an ordered list of columns.
func (c *Columns) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.List())
}
