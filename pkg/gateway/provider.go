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
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/cmskit/contenttypes/pkg/contenttype"
	"github.com/cmskit/contenttypes/pkg/errors"
	"github.com/cmskit/contenttypes/pkg/host"
)

// Provider tracks the content type definitions of one host.
type Provider struct {
	host       host.Host
	defOpts    []contenttype.Option
	limiter    *rate.Limiter
	flushGroup singleflight.Group
	logger     *slog.Logger

	mu      sync.RWMutex
	defs    map[string]*contenttype.Definition
	order   []string
	pending map[string]ManifestEntry
	closed  bool
	// tracked changes whenever order does
	tracked uint64
}

// ProviderOption is a functional option for configuring a Provider.
type ProviderOption func(*Provider)

// WithDefinitionOptions sets the options every definition is constructed with.
func WithDefinitionOptions(opts ...contenttype.Option) ProviderOption {
	return func(p *Provider) {
		p.defOpts = append(p.defOpts, opts...)
	}
}

// WithFlushLimit allows one flush per interval with the given burst.
// Flushes are unlimited by default and a zero interval keeps them so.
func WithFlushLimit(interval time.Duration, burst int) ProviderOption {
	return func(p *Provider) {
		if interval <= 0 {
			p.limiter = nil
			return
		}
		p.limiter = rate.NewLimiter(rate.Every(interval), max(burst, 1))
	}
}

// WithProviderLogger sets the logger. Defaults to slog.Default().
func WithProviderLogger(l *slog.Logger) ProviderOption {
	return func(p *Provider) {
		p.logger = l
	}
}

// NewProvider returns an empty Provider for h.
func NewProvider(h host.Host, opts ...ProviderOption) *Provider {
	p := &Provider{
		host:    h,
		logger:  slog.Default(),
		defs:    make(map[string]*contenttype.Definition),
		pending: make(map[string]ManifestEntry),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load constructs and binds every autoload entry of m and holds the rest
// for Activate. Failing entries are reported together; the others are
// still loaded.
func (p *Provider) Load(m *Manifest) error {
	if m == nil {
		return errors.New(errors.ErrCodeInvalidConfiguration, "manifest is required")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid manifest", err)
	}

	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()
	if closed {
		return errors.New(errors.ErrCodeUnavailable, "provider is closed")
	}

	var errs []error
	for _, e := range m.ContentTypes {
		if !e.Autoload {
			p.mu.Lock()
			p.pending[e.PostTypeName] = e
			p.mu.Unlock()
			definitionsPending.Inc()
			p.logger.Debug("content type pending activation", "contentType", e.PostTypeName)
			continue
		}
		cfg := e.Config
		if _, err := p.Add(e.PostTypeName, &cfg); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// Add constructs, binds and tracks a definition.
func (p *Provider) Add(id string, cfg *contenttype.Config) (*contenttype.Definition, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, errors.New(errors.ErrCodeUnavailable, "provider is closed")
	}

	d, err := New(id, cfg, p.host, p.defOpts...)
	if err != nil {
		return nil, err
	}

	p.defs[id] = d
	p.order = append(p.order, id)
	p.tracked++
	definitionsTracked.Inc()
	p.logger.Info("content type loaded", "contentType", id)
	return d, nil
}

// Activate constructs a pending manifest entry. The host must still raise
// its init event (or the caller flush) for the type to be registered.
func (p *Provider) Activate(id string) (*contenttype.Definition, error) {
	p.mu.Lock()
	e, ok := p.pending[id]
	if ok {
		delete(p.pending, id)
	}
	p.mu.Unlock()

	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("content type %s is not pending activation", id),
			map[string]any{"contentType": id})
	}
	definitionsPending.Dec()

	cfg := e.Config
	d, err := p.Add(id, &cfg)
	if err != nil {
		p.mu.Lock()
		p.pending[id] = e
		p.mu.Unlock()
		definitionsPending.Inc()
		return nil, err
	}
	return d, nil
}

// ActivateAll activates every pending entry in sorted order. Failing
// entries stay pending and are reported together.
func (p *Provider) ActivateAll() error {
	var errs []error
	for _, id := range p.Pending() {
		if _, err := p.Activate(id); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// Get returns the tracked definition of id.
func (p *Provider) Get(id string) (*contenttype.Definition, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	d, ok := p.defs[id]
	return d, ok
}

// ContentTypes returns the identifiers of all tracked definitions in load order.
func (p *Provider) ContentTypes() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.order)
}

// Pending returns the identifiers waiting for Activate, sorted.
func (p *Provider) Pending() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]string, 0, len(p.pending))
	for id := range p.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// FlushRewriteRules registers every tracked definition and then regenerates
// the host routing rules. Concurrent callers share one flush, and a caller
// whose definitions were added after the shared flush took its snapshot
// flushes again. With WithFlushLimit it fails with RATE_LIMIT_EXCEEDED when
// called more often than the limit allows.
func (p *Provider) FlushRewriteRules(ctx context.Context) error {
	if p.limiter != nil && !p.limiter.Allow() {
		flushTotal.WithLabelValues("rate_limited").Inc()
		return errors.New(errors.ErrCodeRateLimitExceeded, "rewrite rules were flushed recently, try again later")
	}

	p.mu.RLock()
	want := p.tracked
	p.mu.RUnlock()

	for {
		v, err, shared := p.flushGroup.Do("flush", func() (any, error) {
			return p.flush(ctx)
		})
		if err != nil {
			return err
		}
		if v.(uint64) >= want {
			return nil
		}
		p.logger.Debug("shared flush predates tracked content types, flushing again", "shared", shared)
	}
}

// flush returns the tracked generation its snapshot was taken at.
func (p *Provider) flush(ctx context.Context) (uint64, error) {
	start := time.Now()
	defer func() {
		flushDuration.Observe(time.Since(start).Seconds())
	}()

	p.mu.RLock()
	gen := p.tracked
	defs := make([]*contenttype.Definition, 0, len(p.order))
	for _, id := range p.order {
		defs = append(defs, p.defs[id])
	}
	p.mu.RUnlock()

	for _, d := range defs {
		if err := d.Register(ctx); err != nil {
			flushTotal.WithLabelValues("error").Inc()
			return gen, err
		}
	}

	if err := p.host.FlushRewriteRules(ctx); err != nil {
		flushTotal.WithLabelValues("error").Inc()
		return gen, fmt.Errorf("flush rewrite rules: %w", err)
	}

	flushTotal.WithLabelValues("success").Inc()
	p.logger.Info("rewrite rules flushed", "contentTypes", len(defs))
	return gen, nil
}

// Close closes every tracked definition, releasing their identifiers.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	for _, id := range p.order {
		if err := p.defs[id].Close(); err != nil {
			errs = append(errs, err)
		}
		definitionsTracked.Dec()
	}
	definitionsPending.Sub(float64(len(p.pending)))

	p.defs = make(map[string]*contenttype.Definition)
	p.order = nil
	p.tracked++
	p.pending = make(map[string]ManifestEntry)
	return stderrors.Join(errs...)
}
