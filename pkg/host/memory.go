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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/cmskit/contenttypes/pkg/defaults"
)

// DefaultPostSupports are the features enabled on the builtin post type.
var DefaultPostSupports = []string{
	"title", "editor", "author", "thumbnail", "excerpt", "trackbacks",
	"custom-fields", "comments", "revisions", "post-formats",
}

// ErrAlreadyAcquired is returned by Acquire when the identifier is held.
var ErrAlreadyAcquired = errors.New("content type already present in registry")

type entry struct {
	builtin       bool
	args          *RegistrationArguments
	registrations int
}

// Memory is an in-process Host. It keeps the content type table, the
// subscribed hooks and a routing-rule generation counter, and dispatches
// host events on demand. It is safe for concurrent use; hooks run without
// the lock held so they may call back into the host.
type Memory struct {
	mu sync.RWMutex

	baseline map[string][]string
	entries  map[string]*entry
	order    []string

	initHooks      []InitFunc
	requestFilters []RequestFilterFunc
	columnFilters  map[string][]ColumnsFilterFunc
	columnData     map[string][]ColumnDataFunc
	sortable       map[string][]SortableColumnsFunc

	defaultColumns  []Column
	defaultSortable SortableColumns

	rewriteGeneration uint64
}

// MemoryOption configures a Memory host.
type MemoryOption func(*Memory)

// WithBaselineSupports sets the enabled features of typeName.
func WithBaselineSupports(typeName string, supports ...string) MemoryOption {
	return func(m *Memory) {
		m.baseline[typeName] = slices.Clone(supports)
	}
}

// WithDefaultColumns replaces the header row every list table starts from.
func WithDefaultColumns(cols ...Column) MemoryOption {
	return func(m *Memory) {
		m.defaultColumns = slices.Clone(cols)
	}
}

// NewMemory returns a host that knows the builtin post type.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		baseline: map[string][]string{
			defaults.BaselineContentType: slices.Clone(DefaultPostSupports),
		},
		entries: map[string]*entry{
			defaults.BaselineContentType: {builtin: true},
		},
		columnFilters: make(map[string][]ColumnsFilterFunc),
		columnData:    make(map[string][]ColumnDataFunc),
		sortable:      make(map[string][]SortableColumnsFunc),
		defaultColumns: []Column{
			{Key: defaults.CheckboxColumn, Label: defaults.CheckboxMarkup},
			{Key: "title", Label: "Title"},
			{Key: "date", Label: "Date"},
		},
		defaultSortable: SortableColumns{"title": "title", "date": "date"},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BaselineSupports implements SupportsProvider.
func (m *Memory) BaselineSupports(typeName string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.baseline[typeName])
}

// Acquire implements Registry.
func (m *Memory) Acquire(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[id]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyAcquired, id)
	}
	m.entries[id] = &entry{}
	m.order = append(m.order, id)
	slog.Debug("content type acquired", "contentType", id)
	return nil
}

// Release implements Registry. It also drops the hooks namespaced by id.
func (m *Memory) Release(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok || e.builtin {
		return false
	}
	delete(m.entries, id)
	delete(m.baseline, id)
	delete(m.columnFilters, ColumnsHook(id))
	delete(m.columnData, ColumnDataHook(id))
	delete(m.sortable, SortableColumnsHook(id))
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return s == id })
	slog.Debug("content type released", "contentType", id)
	return true
}

// ContentTypes implements Registry. Custom types come first in acquisition
// order; the builtin post type is appended when includeBuiltin is set.
func (m *Memory) ContentTypes(includeBuiltin bool) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := slices.Clone(m.order)
	if includeBuiltin {
		out = append(out, defaults.BaselineContentType)
	}
	return out
}

// RegisterContentType implements Registrar. The supports of a registered
// type become its baseline for later lookups.
func (m *Memory) RegisterContentType(_ context.Context, id string, args *RegistrationArguments) error {
	if id == "" {
		return errors.New("content type identifier is empty")
	}
	if args == nil {
		return fmt.Errorf("registration arguments for %s are nil", id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		e = &entry{}
		m.entries[id] = e
		m.order = append(m.order, id)
	}
	e.args = args.Clone()
	e.registrations++
	m.baseline[id] = slices.Clone(args.Supports)
	return nil
}

// Arguments returns the last arguments registered for id.
func (m *Memory) Arguments(id string) (*RegistrationArguments, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[id]
	if !ok || e.args == nil {
		return nil, false
	}
	return e.args.Clone(), true
}

// Registrations returns how many times id was registered.
func (m *Memory) Registrations(id string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if e, ok := m.entries[id]; ok {
		return e.registrations
	}
	return 0
}

// OnInit implements Events.
func (m *Memory) OnInit(fn InitFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initHooks = append(m.initHooks, fn)
}

// OnColumnsFilter implements Events.
func (m *Memory) OnColumnsFilter(contentType string, fn ColumnsFilterFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	hook := ColumnsHook(contentType)
	m.columnFilters[hook] = append(m.columnFilters[hook], fn)
}

// OnColumnData implements Events.
func (m *Memory) OnColumnData(contentType string, fn ColumnDataFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	hook := ColumnDataHook(contentType)
	m.columnData[hook] = append(m.columnData[hook], fn)
}

// OnSortableColumns implements Events.
func (m *Memory) OnSortableColumns(contentType string, fn SortableColumnsFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	hook := SortableColumnsHook(contentType)
	m.sortable[hook] = append(m.sortable[hook], fn)
}

// OnRequest implements Events.
func (m *Memory) OnRequest(fn RequestFilterFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestFilters = append(m.requestFilters, fn)
}

// HasHook reports whether any callback is subscribed under hook.
func (m *Memory) HasHook(hook string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.columnFilters[hook]) > 0 || len(m.columnData[hook]) > 0 || len(m.sortable[hook]) > 0
}

// FlushRewriteRules implements Router.
func (m *Memory) FlushRewriteRules(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rewriteGeneration++
	slog.Debug("rewrite rules flushed", "generation", m.rewriteGeneration)
	return nil
}

// RewriteGeneration returns how many times routing rules were regenerated.
func (m *Memory) RewriteGeneration() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rewriteGeneration
}

// Init fires the initialization event. Every hook runs; failures are joined.
func (m *Memory) Init(ctx context.Context) error {
	m.mu.RLock()
	hooks := slices.Clone(m.initHooks)
	m.mu.RUnlock()

	var errs []error
	for _, fn := range hooks {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// BuildColumns runs the header-row filters of contentType over the default row.
func (m *Memory) BuildColumns(contentType string) *Columns {
	m.mu.RLock()
	filters := slices.Clone(m.columnFilters[ColumnsHook(contentType)])
	cols := NewColumns(m.defaultColumns...)
	m.mu.RUnlock()

	for _, fn := range filters {
		cols = fn(cols)
	}
	return cols
}

// RenderColumn fires the cell render event of contentType for one row and column.
func (m *Memory) RenderColumn(ctx context.Context, w io.Writer, contentType, column string, recordID int64) error {
	m.mu.RLock()
	renderers := slices.Clone(m.columnData[ColumnDataHook(contentType)])
	m.mu.RUnlock()

	var errs []error
	for _, fn := range renderers {
		if err := fn(ctx, w, column, recordID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// BuildSortableColumns runs the sortable-columns filters of contentType.
func (m *Memory) BuildSortableColumns(contentType string) SortableColumns {
	m.mu.RLock()
	filters := slices.Clone(m.sortable[SortableColumnsHook(contentType)])
	cols := maps.Clone(m.defaultSortable)
	m.mu.RUnlock()

	for _, fn := range filters {
		cols = fn(cols)
	}
	return cols
}

// ParseRequest runs the request filters over a copy of qv.
func (m *Memory) ParseRequest(qv QueryVars) QueryVars {
	m.mu.RLock()
	filters := slices.Clone(m.requestFilters)
	m.mu.RUnlock()

	out := qv.Clone()
	for _, fn := range filters {
		out = fn(out)
	}
	return out
}

var _ Host = (*Memory)(nil)
