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
	"context"

	"github.com/cmskit/contenttypes/pkg/contenttype"
	"github.com/cmskit/contenttypes/pkg/errors"
	"github.com/cmskit/contenttypes/pkg/host"
)

// EntryResult is the validation outcome of one manifest entry.
type EntryResult struct {
	PostTypeName string   `json:"postTypeName" yaml:"postTypeName"`
	Autoload     bool     `json:"autoload" yaml:"autoload"`
	Valid        bool     `json:"valid" yaml:"valid"`
	Hooks        []string `json:"hooks,omitempty" yaml:"hooks,omitempty"`
	Code         string   `json:"code,omitempty" yaml:"code,omitempty"`
	Error        string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// ValidationReport is the outcome of ValidateManifest.
type ValidationReport struct {
	Valid   bool          `json:"valid" yaml:"valid"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
	Entries []EntryResult `json:"entries" yaml:"entries"`
}

// Failed returns the number of entries that did not validate.
func (r *ValidationReport) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if !e.Valid {
			n++
		}
	}
	return n
}

// ValidateManifest constructs, binds and registers every entry of m, pending
// ones included, against a scratch host and resolves every column callback.
// Each valid entry lists the list-table hooks it subscribed. Nothing is
// registered with a real host.
func ValidateManifest(ctx context.Context, m *Manifest, opts ...contenttype.Option) *ValidationReport {
	report := &ValidationReport{Valid: true, Entries: []EntryResult{}}
	if m == nil {
		report.Valid = false
		report.Error = "manifest is required"
		return report
	}
	if err := m.Validate(); err != nil {
		report.Valid = false
		report.Error = err.Error()
		return report
	}

	scratch := host.NewMemory()
	for _, e := range m.ContentTypes {
		res := EntryResult{PostTypeName: e.PostTypeName, Autoload: e.Autoload}
		hooks, err := validateEntry(ctx, scratch, e, opts)
		if err != nil {
			res.Code = string(errors.CodeOf(err))
			res.Error = err.Error()
			report.Valid = false
		} else {
			res.Valid = true
			res.Hooks = hooks
		}
		report.Entries = append(report.Entries, res)
	}
	return report
}

func validateEntry(ctx context.Context, h *host.Memory, e ManifestEntry, opts []contenttype.Option) ([]string, error) {
	cfg := e.Config
	d, err := New(e.PostTypeName, &cfg, h, opts...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = d.Close() }()

	if err := d.CheckCallbacks(); err != nil {
		return nil, err
	}
	if err := d.Register(ctx); err != nil {
		return nil, err
	}

	var hooks []string
	for _, hook := range []string{
		host.ColumnsHook(e.PostTypeName),
		host.ColumnDataHook(e.PostTypeName),
		host.SortableColumnsHook(e.PostTypeName),
	} {
		if h.HasHook(hook) {
			hooks = append(hooks, hook)
		}
	}
	return hooks, nil
}
