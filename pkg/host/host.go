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
	"fmt"
	"io"
)

// Registrar submits resolved registration arguments to the host.
// Registering the same identifier again with identical arguments is a no-op
// from the host's point of view.
type Registrar interface {
	RegisterContentType(ctx context.Context, id string, args *RegistrationArguments) error
}

// SupportsProvider exposes the enabled features of an existing content type.
type SupportsProvider interface {
	// BaselineSupports returns the enabled feature names of typeName in host order.
	BaselineSupports(typeName string) []string
}

// Registry is the host's process-wide table of known content types.
// Acquire inserts an entry for id and fails when id is already held;
// Release removes it again.
type Registry interface {
	Acquire(id string) error
	Release(id string) bool
	ContentTypes(includeBuiltin bool) []string
}

// InitFunc runs on the host initialization event.
type InitFunc func(ctx context.Context) error

// ColumnsFilterFunc amends the list-table header row of one content type.
type ColumnsFilterFunc func(cols *Columns) *Columns

// ColumnDataFunc renders one list-table cell. It is called once per row per column.
type ColumnDataFunc func(ctx context.Context, w io.Writer, column string, recordID int64) error

// SortableColumnsFunc amends the sortable-columns registry of one content type.
type SortableColumnsFunc func(cols SortableColumns) SortableColumns

// RequestFilterFunc amends the query variables parsed from a front-end request.
type RequestFilterFunc func(qv QueryVars) QueryVars

// Events is the host's lifecycle subscription surface.
type Events interface {
	OnInit(fn InitFunc)
	OnColumnsFilter(contentType string, fn ColumnsFilterFunc)
	OnColumnData(contentType string, fn ColumnDataFunc)
	OnSortableColumns(contentType string, fn SortableColumnsFunc)
	OnRequest(fn RequestFilterFunc)
}

// Router regenerates the host's URL routing rules.
type Router interface {
	FlushRewriteRules(ctx context.Context) error
}

// Host is everything the content type packages consume from the host.
type Host interface {
	Registrar
	SupportsProvider
	Registry
	Events
	Router
}

// ColumnsHook is the hook name of the header-row filter for contentType.
func ColumnsHook(contentType string) string {
	return fmt.Sprintf("manage_%s_posts_columns", contentType)
}

// ColumnDataHook is the hook name of the cell renderer for contentType.
func ColumnDataHook(contentType string) string {
	return fmt.Sprintf("manage_%s_posts_custom_column", contentType)
}

// SortableColumnsHook is the hook name of the sortable-columns filter for contentType.
func SortableColumnsHook(contentType string) string {
	return fmt.Sprintf("manage_edit-%s_sortable_columns", contentType)
}
