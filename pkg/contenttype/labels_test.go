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
)

func TestBuildLabels_Defaults(t *testing.T) {
	cfg := &Config{PluralName: "Foos", SingularName: "Foo"}
	labels := BuildLabels("foo", cfg)

	for _, key := range LabelKeys {
		assert.Contains(t, labels, key)
	}
	assert.Len(t, labels, len(LabelKeys))

	assert.Equal(t, "Foos", labels["name"])
	assert.Equal(t, "Foo", labels["singular_name"])
	assert.Equal(t, "Add New", labels["add_new"])
	assert.Equal(t, "Add New Foo", labels["add_new_item"])
	assert.Equal(t, "Edit Foo", labels["edit_item"])
	assert.Equal(t, "New Foo", labels["new_item"])
	assert.Equal(t, "View Foo", labels["view_item"])
	assert.Equal(t, "Search Foos", labels["search_items"])
	assert.Equal(t, "No foo found", labels["not_found"])
	assert.Equal(t, "No foos found in Trash", labels["not_found_in_trash"])
	assert.Equal(t, "", labels["parent_item_colon"])
	assert.Equal(t, "All Foos", labels["all_items"])
	assert.Equal(t, "Foos", labels["menu_name"])
}

func TestBuildLabels_OverrideMerge(t *testing.T) {
	cfg := &Config{
		PluralName:   "Books",
		SingularName: "Book",
		Args:         Args{Labels: map[string]string{"menu_name": "Library", "custom": "x"}},
	}
	labels := BuildLabels("book", cfg)

	assert.Equal(t, "Library", labels["menu_name"])
	assert.Equal(t, "x", labels["custom"])
	assert.Equal(t, "Edit Book", labels["edit_item"])
	for _, key := range LabelKeys {
		assert.Contains(t, labels, key)
	}
}

func TestBuildLabels_Idempotent(t *testing.T) {
	cfg := &Config{PluralName: "Books", Args: Args{Labels: map[string]string{"name": "Library"}}}
	assert.Equal(t, BuildLabels("book", cfg), BuildLabels("book", cfg))
	assert.Equal(t, map[string]string{"name": "Library"}, cfg.Args.Labels)
}

func TestBuildLabels_Fallbacks(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		cfg          *Config
		wantName     string
		wantSingular string
	}{
		{"from identifier", "book-review", &Config{}, "Book Review", "Book Review"},
		{"from name label", "book", &Config{Args: Args{Labels: map[string]string{"name": "Library"}}}, "Library", "Library"},
		{"plural only", "book", &Config{PluralName: "Books"}, "Books", "Book"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := BuildLabels(tt.id, tt.cfg)
			assert.Equal(t, tt.wantName, labels["name"])
			assert.Equal(t, tt.wantSingular, labels["singular_name"])
		})
	}
}
