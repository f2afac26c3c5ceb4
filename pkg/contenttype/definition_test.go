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
	"bytes"
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"

	"github.com/cmskit/contenttypes/pkg/errors"
	"github.com/cmskit/contenttypes/pkg/host"
	"github.com/cmskit/contenttypes/pkg/render"
)

type failingHost struct {
	*host.Memory
}

func (f failingHost) RegisterContentType(context.Context, string, *host.RegistrationArguments) error {
	return stderrors.New("storage unavailable")
}

func TestNew_Validation(t *testing.T) {
	cfg := &Config{PluralName: "Foos"}

	tests := []struct {
		name string
		id   string
		cfg  *Config
		code errors.ErrorCode
	}{
		{"empty identifier", "", cfg, errors.ErrCodeInvalidConfiguration},
		{"uppercase identifier", "Foo", cfg, errors.ErrCodeInvalidConfiguration},
		{"identifier with space", "foo bar", cfg, errors.ErrCodeInvalidConfiguration},
		{"nil config", "foo", nil, errors.ErrCodeInvalidConfiguration},
		{"empty config", "foo", &Config{}, errors.ErrCodeInvalidConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := host.NewMemory()
			d, err := New(tt.id, tt.cfg, h)
			require.Error(t, err)
			assert.Nil(t, d)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
			assert.Empty(t, h.ContentTypes(false), "failed construction must not touch the registry")
		})
	}

	_, err := New("foo", cfg, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfiguration))
}

func TestNew_AcquiresOnce(t *testing.T) {
	h := host.NewMemory()

	d, err := New("foo", &Config{PluralName: "Foos"}, h)
	require.NoError(t, err)
	assert.Equal(t, "foo", d.ID())
	assert.Equal(t, []string{"foo"}, h.ContentTypes(false))

	_, err = New("foo", &Config{PluralName: "Foos"}, h)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConflict))
	assert.ErrorIs(t, err, host.ErrAlreadyAcquired)
	assert.Equal(t, []string{"foo"}, h.ContentTypes(false))

	require.NoError(t, d.Close())
	require.NoError(t, d.Close())
	assert.Empty(t, h.ContentTypes(false))

	_, err = New("foo", &Config{PluralName: "Foos"}, h)
	assert.NoError(t, err)
}

func TestDefinition_RegisterFooScenario(t *testing.T) {
	h := host.NewMemory()
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte("pluralName: Foos\nsingularName: Foo\nadditionalSupports: {}\n"), &cfg))

	d, err := New("foo", &cfg, h)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	require.NoError(t, d.Register(context.Background()))
	assert.Equal(t, 1, h.Registrations("foo"))

	args, ok := h.Arguments("foo")
	require.True(t, ok)
	assert.Len(t, args.Labels, len(LabelKeys))
	assert.Equal(t, "Foos", args.Labels["name"])
	assert.Equal(t, "Foo", args.Labels["singular_name"])
	assert.Equal(t, host.DefaultPostSupports, args.Supports)
	assert.Equal(t, host.DefaultPostSupports, d.Supports())
	assert.NotContains(t, args.Supports, "page-attributes")
}

func TestDefinition_BuildArgs(t *testing.T) {
	h := host.NewMemory(host.WithBaselineSupports("post", "title", "editor"))
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(bookConfig), &cfg))

	d, err := New("book", &cfg, h)
	require.NoError(t, err)

	args := d.BuildArgs()
	assert.Equal(t, []string{"title", "editor", "thumbnail", "page-attributes"}, args.Supports)
	assert.Equal(t, []string{"genre", "author"}, args.Taxonomies)
	assert.True(t, args.Hierarchical)
	assert.Equal(t, "Library", args.Labels["menu_name"])
	assert.Equal(t, "Books", args.Labels["name"])
	assert.Equal(t, 5, args.Extra["menu_position"])

	assert.Equal(t, args, d.BuildArgs(), "resolution must be repeatable")
}

func TestDefinition_RegisterHostFailure(t *testing.T) {
	h := failingHost{host.NewMemory()}
	d, err := New("foo", &Config{PluralName: "Foos"}, h)
	require.NoError(t, err)

	err = d.Register(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage unavailable")
}

func TestDefinition_Closed(t *testing.T) {
	h := host.NewMemory()
	d, err := New("book", &Config{AddFeed: true}, h)
	require.NoError(t, err)
	require.NoError(t, d.Close())

	err = d.Register(context.Background())
	assert.True(t, errors.Is(err, errors.ErrCodeUnavailable))

	qv := host.QueryVars{"feed": "rss2"}
	d.FilterFeed(qv)
	assert.False(t, qv.Has("post_type"))
}

func TestDefinition_FilterFeed(t *testing.T) {
	h := host.NewMemory()
	d, err := New("book", &Config{AddFeed: true}, h)
	require.NoError(t, err)

	qv := d.FilterFeed(host.QueryVars{"feed": "rss2"})
	types, ok := qv.PostTypes()
	require.True(t, ok)
	assert.Equal(t, []string{"post", "book"}, types)

	qv = d.FilterFeed(qv)
	types, _ = qv.PostTypes()
	assert.Equal(t, []string{"post", "book"}, types, "second pass must not duplicate")
}

func TestDefinition_FilterFeedSeedIgnoresBaselineType(t *testing.T) {
	h := host.NewMemory()
	d, err := New("book", &Config{AddFeed: true}, h, WithBaselineType("page"))
	require.NoError(t, err)

	types, ok := d.FilterFeed(host.QueryVars{"feed": "rss2"}).PostTypes()
	require.True(t, ok)
	assert.Equal(t, []string{"post", "book"}, types)
}

func TestDefinition_FilterColumns(t *testing.T) {
	h := host.NewMemory()
	cfg := &Config{ColumnsFilter: ColumnEntries{{Key: "cb", Checkbox: ptr.To(false)}, {Key: "isbn", Label: "ISBN"}}}
	d, err := New("book", cfg, h)
	require.NoError(t, err)

	cols := d.FilterColumns(h.BuildColumns("book"))
	assert.Equal(t, []string{"cb", "title", "date", "isbn"}, cols.Keys())
	label, _ := cols.Get("cb")
	assert.Empty(t, label)

	assert.Equal(t, []string{"cb", "isbn"}, d.FilterColumns(nil).Keys())
	assert.True(t, d.HasColumnsFilter())
	assert.False(t, d.HasColumnsData())
	assert.False(t, d.HasSortableColumns())
}

func TestDefinition_RenderColumnData(t *testing.T) {
	renderers := render.NewFromGlobal()
	renderers.Register("fail", render.Func(func(context.Context, []any) (any, error) {
		return nil, stderrors.New("boom")
	}))
	renderers.Register("nothing", render.Func(func(context.Context, []any) (any, error) {
		return nil, nil
	}))

	cfg := &Config{ColumnsData: map[string]RenderDescriptor{
		"isbn":    {Callback: render.Sprintf, Args: []any{"ISBN-%d"}},
		"id":      {Callback: render.RecordID},
		"silent":  {Callback: render.RecordID, Echo: ptr.To(false)},
		"nocb":    {Args: []any{"x"}},
		"missing": {Callback: "does-not-exist"},
		"fail":    {Callback: "fail"},
		"nothing": {Callback: "nothing"},
	}}

	d, err := New("book", cfg, host.NewMemory(), WithRenderers(renderers))
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name   string
		column string
		want   string
		code   errors.ErrorCode
	}{
		{"sprintf with record id", "isbn", "ISBN-42", ""},
		{"record id", "id", "42", ""},
		{"echo disabled", "silent", "", ""},
		{"no callback skipped", "nocb", "", ""},
		{"unconfigured column skipped", "other", "", ""},
		{"nil result writes nothing", "nothing", "", ""},
		{"unresolvable callback", "missing", "", errors.ErrCodeConfiguration},
		{"renderer failure", "fail", "", errors.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := d.RenderColumnData(ctx, &buf, tt.column, 42)
			if tt.code != "" {
				require.Error(t, err)
				assert.Equal(t, tt.code, errors.CodeOf(err))
				var se *errors.StructuredError
				require.True(t, stderrors.As(err, &se))
				assert.Equal(t, tt.column, se.Context["column"])
				assert.Equal(t, "book", se.Context["contentType"])
				assert.Contains(t, err.Error(), tt.column)
				assert.Contains(t, err.Error(), "book")
				assert.Empty(t, buf.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}

	assert.Equal(t, []any{"ISBN-%d"}, cfg.ColumnsData["isbn"].Args, "descriptor args must not grow")
}

func TestDefinition_Sorting(t *testing.T) {
	cfg := &Config{SortableColumns: KeySet{"isbn", "price"}}
	d, err := New("book", cfg, host.NewMemory())
	require.NoError(t, err)
	assert.True(t, d.HasSortableColumns())

	got := d.MakeColumnsSortable(host.SortableColumns{"title": "title"})
	assert.Equal(t, host.SortableColumns{"title": "title", "isbn": "isbn", "price": "price"}, got)
	assert.Equal(t, host.SortableColumns{"isbn": "isbn", "price": "price"}, d.MakeColumnsSortable(nil))

	qv := host.QueryVars{"orderby": "isbn", "post_type": "book"}
	assert.Equal(t, host.QueryVars{"orderby": "isbn", "post_type": "book"}, d.SortColumnsBy(qv))
}

func TestDefinition_CheckCallbacks(t *testing.T) {
	h := host.NewMemory()
	cfg := &Config{
		PluralName: "Books",
		ColumnsData: map[string]RenderDescriptor{
			"isbn":   {Callback: render.Sprintf},
			"author": {Callback: "missing"},
			"cover":  {Callback: "also-missing"},
			"plain":  {},
		},
	}
	d, err := New("book", cfg, h)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	err = d.CheckCallbacks()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfiguration))
	assert.Contains(t, err.Error(), `"missing" of column author`)
	assert.Contains(t, err.Error(), `"also-missing" of column cover`)
	assert.NotContains(t, err.Error(), "isbn")

	ok, err := New("magazine", &Config{PluralName: "Magazines"}, h)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ok.Close() })
	assert.NoError(t, ok.CheckCallbacks())
}
