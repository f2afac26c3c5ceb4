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
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cmskit/contenttypes/pkg/contenttype"
	"github.com/cmskit/contenttypes/pkg/errors"
	"github.com/cmskit/contenttypes/pkg/host"
)

const testManifest = `
kind: ContentTypeManifest
apiVersion: contenttypes.cmskit.dev/v1
contentTypes:
  - postTypeName: book
    autoload: true
    config:
      pluralName: Books
      singularName: Book
      addFeed: true
  - postTypeName: movie
    autoload: true
    config:
      pluralName: Movies
      args:
        hierarchical: true
  - postTypeName: event
    config:
      pluralName: Events
`

func loadManifest(t *testing.T, doc string) *Manifest {
	t.Helper()
	var m Manifest
	require.NoError(t, yaml.Unmarshal([]byte(doc), &m))
	return &m
}

func TestProvider_Load(t *testing.T) {
	h := host.NewMemory()
	p := NewProvider(h)
	t.Cleanup(func() { _ = p.Close() })

	require.NoError(t, p.Load(loadManifest(t, testManifest)))

	assert.Equal(t, []string{"book", "movie"}, p.ContentTypes())
	assert.Equal(t, []string{"event"}, p.Pending())
	assert.Equal(t, []string{"book", "movie"}, h.ContentTypes(false))

	d, ok := p.Get("movie")
	require.True(t, ok)
	assert.Contains(t, d.BuildArgs().Supports, "page-attributes")

	_, ok = p.Get("event")
	assert.False(t, ok)
}

func TestProvider_Activate(t *testing.T) {
	h := host.NewMemory()
	p := NewProvider(h)
	require.NoError(t, p.Load(loadManifest(t, testManifest)))

	d, err := p.Activate("event")
	require.NoError(t, err)
	assert.Equal(t, "event", d.ID())
	assert.Empty(t, p.Pending())
	assert.Equal(t, []string{"book", "movie", "event"}, p.ContentTypes())

	_, err = p.Activate("event")
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))

	require.NoError(t, p.Close())
	assert.Empty(t, h.ContentTypes(false))
	assert.Empty(t, p.ContentTypes())
}

func TestProvider_LoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"wrong kind", "kind: Recipe\ncontentTypes: []"},
		{"export kind", "kind: RegistrationSet\ncontentTypes: []"},
		{"missing name", "contentTypes:\n  - autoload: true\n    config: {pluralName: X}"},
		{"duplicate name", "contentTypes:\n  - postTypeName: a\n  - postTypeName: a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProvider(host.NewMemory())
			err := p.Load(loadManifest(t, tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfiguration))
		})
	}

	p := NewProvider(host.NewMemory())
	assert.Error(t, p.Load(nil))
}

func TestProvider_LoadContinuesPastBadEntry(t *testing.T) {
	doc := `
contentTypes:
  - postTypeName: Bad Name
    autoload: true
    config: {pluralName: Bad}
  - postTypeName: empty
    autoload: true
    config: {}
  - postTypeName: good
    autoload: true
    config: {pluralName: Goods}
`
	p := NewProvider(host.NewMemory())
	err := p.Load(loadManifest(t, doc))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfiguration))
	assert.Equal(t, []string{"good"}, p.ContentTypes())
}

func TestProvider_FlushRewriteRules(t *testing.T) {
	h := host.NewMemory()
	p := NewProvider(h)
	require.NoError(t, p.Load(loadManifest(t, testManifest)))

	require.NoError(t, p.FlushRewriteRules(context.Background()))
	assert.Equal(t, 1, h.Registrations("book"))
	assert.Equal(t, 1, h.Registrations("movie"))
	assert.Equal(t, 0, h.Registrations("event"))
	assert.Equal(t, uint64(1), h.RewriteGeneration())

	_, err := p.Activate("event")
	require.NoError(t, err)
	require.NoError(t, p.FlushRewriteRules(context.Background()))

	assert.Equal(t, 2, h.Registrations("book"))
	assert.Equal(t, 2, h.Registrations("movie"))
	assert.Equal(t, 1, h.Registrations("event"))
	assert.Equal(t, uint64(2), h.RewriteGeneration())
	assert.Equal(t, []string{"book", "movie", "event"}, h.ContentTypes(false))
}

func TestProvider_FlushLimit(t *testing.T) {
	h := host.NewMemory()
	p := NewProvider(h, WithFlushLimit(time.Hour, 1))
	require.NoError(t, p.Load(loadManifest(t, testManifest)))

	require.NoError(t, p.FlushRewriteRules(context.Background()))

	err := p.FlushRewriteRules(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeRateLimitExceeded))
	assert.Equal(t, uint64(1), h.RewriteGeneration())
}

// gatedHost holds its first rewrite flush until release is closed.
type gatedHost struct {
	*host.Memory
	entered chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func (g *gatedHost) FlushRewriteRules(ctx context.Context) error {
	if g.calls.Add(1) == 1 {
		close(g.entered)
		<-g.release
	}
	return g.Memory.FlushRewriteRules(ctx)
}

func TestProvider_FlushCoversTypesAddedDuringFlush(t *testing.T) {
	ctx := context.Background()
	h := &gatedHost{Memory: host.NewMemory(), entered: make(chan struct{}), release: make(chan struct{})}
	p := NewProvider(h)
	t.Cleanup(func() { _ = p.Close() })

	_, err := p.Add("book", &contenttype.Config{PluralName: "Books"})
	require.NoError(t, err)

	first := make(chan error, 1)
	go func() { first <- p.FlushRewriteRules(ctx) }()
	<-h.entered

	_, err = p.Add("movie", &contenttype.Config{PluralName: "Movies"})
	require.NoError(t, err)

	second := make(chan error, 1)
	go func() { second <- p.FlushRewriteRules(ctx) }()
	// let the second caller join the flush in flight
	time.Sleep(20 * time.Millisecond)
	close(h.release)

	require.NoError(t, <-first)
	require.NoError(t, <-second)
	assert.GreaterOrEqual(t, h.Registrations("movie"), 1)
	assert.GreaterOrEqual(t, h.RewriteGeneration(), uint64(2))
}

func TestProvider_FlushUnlimited(t *testing.T) {
	h := host.NewMemory()
	p := NewProvider(h, WithFlushLimit(0, 0))
	require.NoError(t, p.Load(loadManifest(t, testManifest)))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, p.FlushRewriteRules(context.Background()))
		}()
	}
	wg.Wait()

	gen := h.RewriteGeneration()
	assert.GreaterOrEqual(t, gen, uint64(1))
	assert.LessOrEqual(t, gen, uint64(5))
	assert.Equal(t, int(gen), h.Registrations("book"))
}

func TestProvider_AddAfterClose(t *testing.T) {
	p := NewProvider(host.NewMemory())
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	m := loadManifest(t, testManifest)
	err := p.Load(m)
	assert.True(t, errors.Is(err, errors.ErrCodeUnavailable))
}
