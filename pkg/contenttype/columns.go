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
	"github.com/cmskit/contenttypes/pkg/defaults"
	"github.com/cmskit/contenttypes/pkg/host"
)

// ColumnTransformer amends one column of the list-table header row.
type ColumnTransformer interface {
	Transform(cols *host.Columns)
}

// CheckboxColumn toggles the selection checkbox column.
type CheckboxColumn struct {
	Enabled bool
}

// Transform sets the checkbox markup, or an empty label when disabled.
func (c CheckboxColumn) Transform(cols *host.Columns) {
	if c.Enabled {
		cols.Set(defaults.CheckboxColumn, defaults.CheckboxMarkup)
		return
	}
	cols.Set(defaults.CheckboxColumn, "")
}

// LabelColumn sets or overrides the label of one column.
type LabelColumn struct {
	Key   string
	Label string
}

// Transform sets the column label. New columns are appended.
func (c LabelColumn) Transform(cols *host.Columns) {
	cols.Set(c.Key, c.Label)
}

// Transformer returns the transformer configured by the entry.
func (e ColumnEntry) Transformer() ColumnTransformer {
	if e.Key == defaults.CheckboxColumn && e.Checkbox != nil {
		return CheckboxColumn{Enabled: *e.Checkbox}
	}
	return LabelColumn{Key: e.Key, Label: e.Label}
}

// Transformers returns the transformers of all entries in order.
func (c ColumnEntries) Transformers() []ColumnTransformer {
	out := make([]ColumnTransformer, 0, len(c))
	for _, e := range c {
		out = append(out, e.Transformer())
	}
	return out
}
