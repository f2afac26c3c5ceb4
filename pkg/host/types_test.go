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
	"slices"
	"testing"
)

func TestQueryVars_PostTypes(t *testing.T) {
	tests := []struct {
		name   string
		qv     QueryVars
		want   []string
		isList bool
	}{
		{"absent", QueryVars{}, nil, false},
		{"scalar", QueryVars{"post_type": "book"}, nil, false},
		{"string list", QueryVars{"post_type": []string{"post", "book"}}, []string{"post", "book"}, true},
		{"any list", QueryVars{"post_type": []any{"post", "book"}}, []string{"post", "book"}, true},
		{"mixed any list", QueryVars{"post_type": []any{"post", 3}}, []string{"post", "3"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.qv.PostTypes()
			if ok != tt.isList {
				t.Errorf("isList = %v, want %v", ok, tt.isList)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("PostTypes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryVars_IsFeed(t *testing.T) {
	if (QueryVars{}).IsFeed() {
		t.Error("empty query vars are not a feed")
	}
	if !(QueryVars{"feed": ""}).IsFeed() {
		t.Error("feed key marks a feed request even when empty")
	}
}

func TestColumns_SetKeepsPosition(t *testing.T) {
	c := NewColumns(Column{"cb", "x"}, Column{"title", "Title"}, Column{"date", "Date"})
	c.Set("title", "Name")
	c.Set("price", "Price")

	if got := c.Keys(); !slices.Equal(got, []string{"cb", "title", "date", "price"}) {
		t.Errorf("Keys() = %v", got)
	}
	if label, _ := c.Get("title"); label != "Name" {
		t.Errorf("title label = %q", label)
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
}

func TestColumns_MarshalJSONOrdered(t *testing.T) {
	c := NewColumns(Column{"z", "Z"}, Column{"a", "A"})
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"key":"z","label":"Z"},{"key":"a","label":"A"}]`
	if string(data) != want {
		t.Errorf("MarshalJSON = %s, want %s", data, want)
	}
}

func TestRegistrationArguments_Clone(t *testing.T) {
	var nilArgs *RegistrationArguments
	if nilArgs.Clone() != nil {
		t.Error("Clone of nil must be nil")
	}

	a := &RegistrationArguments{
		Labels:     map[string]string{"name": "Books"},
		Supports:   []string{"title"},
		Taxonomies: []string{"genre"},
		Extra:      map[string]any{"rewrite": true},
	}
	b := a.Clone()
	b.Labels["name"] = "x"
	b.Supports[0] = "x"
	b.Taxonomies[0] = "x"
	b.Extra["rewrite"] = false

	if a.Labels["name"] != "Books" || a.Supports[0] != "title" || a.Taxonomies[0] != "genre" || a.Extra["rewrite"] != true {
		t.Errorf("Clone shares state with original: %+v", a)
	}
}
