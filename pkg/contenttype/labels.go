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
	"maps"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LabelKeys are the keys of the default label set, in host order.
var LabelKeys = []string{
	"name",
	"singular_name",
	"add_new",
	"add_new_item",
	"edit_item",
	"new_item",
	"view_item",
	"search_items",
	"not_found",
	"not_found_in_trash",
	"parent_item_colon",
	"all_items",
	"menu_name",
}

// BuildLabels returns the label set of content type id. The default set is
// built from the configured plural and singular names; labels given in
// cfg.Args.Labels override individual defaults.
func BuildLabels(id string, cfg *Config) map[string]string {
	singular := cfg.SingularName
	if singular == "" {
		singular = displayName(id, cfg.Args.Labels)
	}
	plural := cfg.PluralName
	if plural == "" {
		plural = displayName(id, cfg.Args.Labels)
	}

	labels := map[string]string{
		"name":               plural,
		"singular_name":      singular,
		"add_new":            "Add New",
		"add_new_item":       fmt.Sprintf("Add New %s", singular),
		"edit_item":          fmt.Sprintf("Edit %s", singular),
		"new_item":           fmt.Sprintf("New %s", singular),
		"view_item":          fmt.Sprintf("View %s", singular),
		"search_items":       fmt.Sprintf("Search %s", plural),
		"not_found":          fmt.Sprintf("No %s found", strings.ToLower(singular)),
		"not_found_in_trash": fmt.Sprintf("No %s found in Trash", strings.ToLower(plural)),
		"parent_item_colon":  "",
		"all_items":          fmt.Sprintf("All %s", plural),
		"menu_name":          plural,
	}

	maps.Copy(labels, cfg.Args.Labels)
	return labels
}

// displayName is the configured "name" label, or the identifier with
// dashes replaced by spaces in title case.
func displayName(id string, labels map[string]string) string {
	if name := labels["name"]; name != "" {
		return name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}
