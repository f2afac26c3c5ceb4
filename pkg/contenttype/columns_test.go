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
	"testing"

	"github.com/stretchr/testify/assert"
	"k8s.io/utils/ptr"

	"github.com/cmskit/contenttypes/pkg/defaults"
	"github.com/cmskit/contenttypes/pkg/host"
)

func TestColumnEntries_Transformers(t *testing.T) {
	entries := ColumnEntries{
		{Key: "cb", Checkbox: ptr.To(true)},
		{Key: "title", Label: "Book Title"},
		{Key: "isbn", Label: "ISBN"},
	}

	cols := host.NewColumns(host.Column{Key: "title", Label: "Title"}, host.Column{Key: "date", Label: "Date"})
	for _, tr := range entries.Transformers() {
		tr.Transform(cols)
	}

	assert.Equal(t, []string{"title", "date", "cb", "isbn"}, cols.Keys())
	label, _ := cols.Get("cb")
	assert.Equal(t, defaults.CheckboxMarkup, label)
	label, _ = cols.Get("title")
	assert.Equal(t, "Book Title", label)
}

func TestColumnEntry_Transformer(t *testing.T) {
	assert.Equal(t, CheckboxColumn{Enabled: true}, ColumnEntry{Key: "cb", Checkbox: ptr.To(true)}.Transformer())
	assert.Equal(t, CheckboxColumn{Enabled: false}, ColumnEntry{Key: "cb", Checkbox: ptr.To(false)}.Transformer())
	assert.Equal(t, LabelColumn{Key: "cb", Label: "Select"}, ColumnEntry{Key: "cb", Label: "Select"}.Transformer())
	assert.Equal(t, LabelColumn{Key: "x", Label: "X"}, ColumnEntry{Key: "x", Label: "X"}.Transformer())
}

func TestCheckboxColumn_Disabled(t *testing.T) {
	cols := host.NewColumns(host.Column{Key: "cb", Label: defaults.CheckboxMarkup}, host.Column{Key: "title", Label: "Title"})
	CheckboxColumn{Enabled: false}.Transform(cols)
	assert.Equal(t, []string{"cb", "title"}, cols.Keys())
	label, ok := cols.Get("cb")
	assert.True(t, ok)
	assert.Empty(t, label)
}
