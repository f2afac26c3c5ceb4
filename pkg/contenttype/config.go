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
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"
)

// Config is the configuration of one content type.
//
// Sections whose order matters (additionalSupports, columnsFilter and
// sortableColumns) keep document order when decoded. JSON documents are
// decoded through the YAML decoder so both formats behave the same.
type Config struct {
	// Args holds the raw registration arguments.
	Args Args `json:"args,omitempty" yaml:"args,omitempty"`

	PluralName   string `json:"pluralName,omitempty" yaml:"pluralName,omitempty"`
	SingularName string `json:"singularName,omitempty" yaml:"singularName,omitempty"`

	// AdditionalSupports is merged over the baseline feature set.
	// A feature set to false is excluded.
	AdditionalSupports Features `json:"additionalSupports,omitempty" yaml:"additionalSupports,omitempty"`

	// ColumnsFilter amends the list-table header row, in order.
	ColumnsFilter ColumnEntries `json:"columnsFilter,omitempty" yaml:"columnsFilter,omitempty"`

	// ColumnsData maps a column key to its cell renderer.
	ColumnsData map[string]RenderDescriptor `json:"columnsData,omitempty" yaml:"columnsData,omitempty"`

	// SortableColumns lists the column keys that are sortable by themselves.
	SortableColumns KeySet `json:"sortableColumns,omitempty" yaml:"sortableColumns,omitempty"`

	// SortColumnsBy is reserved. It is decoded but never applied.
	SortColumnsBy map[string]any `json:"sortColumnsBy,omitempty" yaml:"sortColumnsBy,omitempty"`

	// AddFeed includes the content type in syndication feeds.
	AddFeed bool `json:"addFeed,omitempty" yaml:"addFeed,omitempty"`

	// sections counts the top-level keys of the decoded document.
	sections int
}

// UnmarshalYAML decodes the configuration and records how many top-level
// sections the document carried.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type plain Config
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = Config(p)
	if node.Kind == yaml.MappingNode {
		c.sections = len(node.Content) / 2
	}
	return nil
}

// UnmarshalJSON decodes a JSON document using the YAML decoder.
func (c *Config) UnmarshalJSON(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// IsEmpty reports whether the configuration carries no section at all.
// A decoded document with any top-level key is never empty, even when
// every value is zero.
func (c *Config) IsEmpty() bool {
	if c == nil {
		return true
	}
	if c.sections > 0 {
		return false
	}
	return c.Args.isZero() &&
		c.PluralName == "" &&
		c.SingularName == "" &&
		c.AdditionalSupports == nil &&
		c.ColumnsFilter == nil &&
		c.ColumnsData == nil &&
		c.SortableColumns == nil &&
		c.SortColumnsBy == nil &&
		!c.AddFeed
}

// Args are the raw registration arguments of a content type.
type Args struct {
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Supports, when non-nil, is used verbatim instead of the resolved feature set.
	Supports []string `json:"supports,omitempty" yaml:"supports,omitempty"`

	Hierarchical bool `json:"hierarchical,omitempty" yaml:"hierarchical,omitempty"`

	// Taxonomies is a list of taxonomy names or a comma separated string.
	Taxonomies any `json:"taxonomies,omitempty" yaml:"taxonomies,omitempty"`

	Public      *bool  `json:"public,omitempty" yaml:"public,omitempty"`
	ShowInREST  *bool  `json:"show_in_rest,omitempty" yaml:"show_in_rest,omitempty"`
	HasArchive  *bool  `json:"has_archive,omitempty" yaml:"has_archive,omitempty"`
	MenuIcon    string `json:"menu_icon,omitempty" yaml:"menu_icon,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Extra holds every other argument; it is passed to the host untouched.
	Extra map[string]any `json:"-" yaml:",inline"`
}

func (a *Args) isZero() bool {
	return a.Labels == nil && a.Supports == nil && !a.Hierarchical &&
		a.Taxonomies == nil && a.Public == nil && a.ShowInREST == nil &&
		a.HasArchive == nil && a.MenuIcon == "" && a.Description == "" &&
		len(a.Extra) == 0
}

// Feature is one entry of an ordered feature set.
type Feature struct {
	Name    string `json:"name" yaml:"name"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// Features is an ordered feature set. It decodes from a mapping of
// feature name to flag, or from a sequence of enabled feature names.
type Features []Feature

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Features) UnmarshalYAML(node *yaml.Node) error {
	out := Features{}
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			out = append(out, Feature{Name: node.Content[i].Value, Enabled: truthy(node.Content[i+1])})
		}
	case yaml.SequenceNode:
		for _, n := range node.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: feature name must be a scalar", n.Line)
			}
			out = append(out, Feature{Name: n.Value, Enabled: true})
		}
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*f = nil
			return nil
		}
		return fmt.Errorf("line %d: features must be a mapping or a sequence", node.Line)
	default:
		return fmt.Errorf("line %d: features must be a mapping or a sequence", node.Line)
	}
	*f = out
	return nil
}

// ColumnEntry is one entry of the columns filter. Checkbox is set only for
// the selection checkbox column configured with a boolean.
type ColumnEntry struct {
	Key      string `json:"key" yaml:"key"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Checkbox *bool  `json:"checkbox,omitempty" yaml:"checkbox,omitempty"`
}

// ColumnEntries is the ordered columns filter. It decodes from a mapping of
// column key to label.
type ColumnEntries []ColumnEntry

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColumnEntries) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*c = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: columnsFilter must be a mapping", node.Line)
	}

	out := ColumnEntries{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		entry := ColumnEntry{Key: k.Value}
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: label of column %s must be a scalar", v.Line, k.Value)
		}
		if v.Tag == "!!bool" {
			b, err := strconv.ParseBool(v.Value)
			if err != nil {
				return fmt.Errorf("line %d: %w", v.Line, err)
			}
			entry.Checkbox = ptr.To(b)
		} else {
			entry.Label = v.Value
		}
		out = append(out, entry)
	}
	*c = out
	return nil
}

// RenderDescriptor configures how one column cell is rendered.
type RenderDescriptor struct {
	// Callback names a renderer in the definition's render registry.
	Callback string `json:"callback,omitempty" yaml:"callback,omitempty"`

	// Echo controls whether the result is written. Defaults to true.
	Echo *bool `json:"echo,omitempty" yaml:"echo,omitempty"`

	// Args are passed to the renderer, followed by the record identifier.
	Args []any `json:"args,omitempty" yaml:"args,omitempty"`
}

// ShouldEcho reports whether the rendered value is written to the output.
func (d RenderDescriptor) ShouldEcho() bool {
	return ptr.Deref(d.Echo, true)
}

// KeySet is an ordered set of keys. It decodes from a sequence of keys or
// from the keys of a mapping.
type KeySet []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *KeySet) UnmarshalYAML(node *yaml.Node) error {
	out := KeySet{}
	seen := make(map[string]bool)
	add := func(key string) {
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}

	switch node.Kind {
	case yaml.SequenceNode:
		for _, n := range node.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: key must be a scalar", n.Line)
			}
			add(n.Value)
		}
	case yaml.MappingNode:
		for i := 0; i < len(node.Content); i += 2 {
			add(node.Content[i].Value)
		}
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*k = nil
			return nil
		}
		return fmt.Errorf("line %d: keys must be a sequence or a mapping", node.Line)
	default:
		return fmt.Errorf("line %d: keys must be a sequence or a mapping", node.Line)
	}
	*k = out
	return nil
}

// truthy evaluates a node with loose truthiness: false, 0, "", "0", null
// and empty collections are false, everything else is true.
func truthy(n *yaml.Node) bool {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return false
		case "!!bool":
			b, _ := strconv.ParseBool(n.Value)
			return b
		case "!!int", "!!float":
			f, err := strconv.ParseFloat(n.Value, 64)
			return err != nil || f != 0
		default:
			return n.Value != "" && n.Value != "0"
		}
	case yaml.AliasNode:
		return n.Alias != nil && truthy(n.Alias)
	default:
		return len(n.Content) > 0
	}
}
