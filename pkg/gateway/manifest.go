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

package gateway

import (
	"fmt"

	"github.com/cmskit/contenttypes/pkg/contenttype"
	"github.com/cmskit/contenttypes/pkg/header"
)

// Manifest lists the content types a Provider manages.
type Manifest struct {
	header.Header `json:",inline" yaml:",inline"`

	ContentTypes []ManifestEntry `json:"contentTypes" yaml:"contentTypes"`
}

// ManifestEntry is one content type of a manifest.
type ManifestEntry struct {
	// Autoload constructs the content type on Load. Entries without it wait
	// for Provider.Activate.
	Autoload bool `json:"autoload,omitempty" yaml:"autoload,omitempty"`

	PostTypeName string             `json:"postTypeName" yaml:"postTypeName"`
	Config       contenttype.Config `json:"config" yaml:"config"`
}

// Validate checks header kind and that every entry has a unique name.
// Configuration content is validated when the entry is constructed.
func (m *Manifest) Validate() error {
	if m.Kind != "" && m.Kind != header.KindContentTypeManifest {
		if m.Kind.IsValid() {
			return fmt.Errorf("document kind %q is an export and cannot be loaded as a manifest", m.Kind)
		}
		return fmt.Errorf("unexpected manifest kind %q, want %q", m.Kind, header.KindContentTypeManifest)
	}
	if m.APIVersion != "" && m.APIVersion != header.APIVersionV1 {
		return fmt.Errorf("unsupported manifest apiVersion %q, want %q", m.APIVersion, header.APIVersionV1)
	}

	seen := make(map[string]bool, len(m.ContentTypes))
	for i, e := range m.ContentTypes {
		if e.PostTypeName == "" {
			return fmt.Errorf("content type at index %d has no postTypeName", i)
		}
		if seen[e.PostTypeName] {
			return fmt.Errorf("content type %s is listed more than once", e.PostTypeName)
		}
		seen[e.PostTypeName] = true
	}
	return nil
}
