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
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/cmskit/contenttypes/pkg/contenttype"
	"github.com/cmskit/contenttypes/pkg/errors"
	"github.com/cmskit/contenttypes/pkg/host"
	"github.com/cmskit/contenttypes/pkg/render"
)

func TestBind_AlwaysSubscribed(t *testing.T) {
	h := host.NewMemory()
	d, err := New("book", &contenttype.Config{PluralName: "Books", AddFeed: true}, h)
	require.NoError(t, err)

	assert.False(t, h.HasHook(host.ColumnsHook("book")))
	assert.False(t, h.HasHook(host.ColumnDataHook("book")))
	assert.False(t, h.HasHook(host.SortableColumnsHook("book")))

	require.NoError(t, h.Init(context.Background()))
	assert.Equal(t, 1, h.Registrations("book"))

	qv := h.ParseRequest(host.QueryVars{"feed": "rss2"})
	types, _ := qv.PostTypes()
	assert.Equal(t, []string{"post", "book"}, types)

	require.NoError(t, d.Close())
	require.NoError(t, h.Init(context.Background()), "closed definitions are skipped on init")
	assert.Equal(t, 1, h.Registrations("book"))
}

func TestBind_ConditionalHooks(t *testing.T) {
	h := host.NewMemory()
	cfg := &contenttype.Config{
		PluralName: "Books",
		ColumnsFilter: contenttype.ColumnEntries{
			{Key: "cb", Checkbox: ptr.To(true)},
			{Key: "isbn", Label: "ISBN"},
		},
		ColumnsData: map[string]contenttype.RenderDescriptor{
			"isbn": {Callback: render.Sprintf, Args: []any{"#%d"}},
		},
		SortableColumns: contenttype.KeySet{"isbn"},
	}

	_, err := New("book", cfg, h)
	require.NoError(t, err)

	assert.True(t, h.HasHook(host.ColumnsHook("book")))
	assert.True(t, h.HasHook(host.ColumnDataHook("book")))
	assert.True(t, h.HasHook(host.SortableColumnsHook("book")))

	assert.Equal(t, []string{"cb", "title", "date", "isbn"}, h.BuildColumns("book").Keys())
	assert.Equal(t, "isbn", h.BuildSortableColumns("book")["isbn"])

	var buf bytes.Buffer
	require.NoError(t, h.RenderColumn(context.Background(), &buf, "book", "isbn", 9))
	assert.Equal(t, "#9", buf.String())
}

func TestBind_EmptySectionsNotSubscribed(t *testing.T) {
	h := host.NewMemory()
	cfg := &contenttype.Config{
		PluralName:      "Books",
		ColumnsFilter:   contenttype.ColumnEntries{},
		ColumnsData:     map[string]contenttype.RenderDescriptor{},
		SortableColumns: contenttype.KeySet{},
	}
	_, err := New("book", cfg, h)
	require.NoError(t, err)

	assert.False(t, h.HasHook(host.ColumnsHook("book")))
	assert.False(t, h.HasHook(host.ColumnDataHook("book")))
	assert.False(t, h.HasHook(host.SortableColumnsHook("book")))
}

func TestNew_FailureLeavesNothingBehind(t *testing.T) {
	h := host.NewMemory()
	_, err := New("", &contenttype.Config{PluralName: "X"}, h)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfiguration))

	require.NoError(t, h.Init(context.Background()))
	assert.Empty(t, h.ContentTypes(false))
}

func TestBind_RenderErrorIsolated(t *testing.T) {
	h := host.NewMemory()
	cfg := &contenttype.Config{
		PluralName: "Books",
		ColumnsData: map[string]contenttype.RenderDescriptor{
			"ok":     {Callback: render.RecordID},
			"broken": {Callback: "unknown"},
		},
	}
	_, err := New("book", cfg, h)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = h.RenderColumn(context.Background(), &buf, "book", "broken", 1)
	assert.True(t, errors.Is(err, errors.ErrCodeConfiguration))

	buf.Reset()
	require.NoError(t, h.RenderColumn(context.Background(), &buf, "book", "ok", 1))
	assert.Equal(t, "1", buf.String())
}
