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

package render

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/cmskit/contenttypes/pkg/errors"
)

// Renderer produces the content of one list-table cell.
type Renderer interface {
	Render(ctx context.Context, args []any) (any, error)
}

// Func adapts an ordinary function to the Renderer interface.
type Func func(ctx context.Context, args []any) (any, error)

// Render calls f(ctx, args).
func (f Func) Render(ctx context.Context, args []any) (any, error) {
	return f(ctx, args)
}

// Global registry for renderers.
// Renderers register themselves via init() functions.
var (
	globalRenderers = make(map[string]Renderer)
	globalMu        sync.RWMutex
)

// Register registers a renderer globally.
// Returns an error if the name is empty or already registered.
func Register(name string, r Renderer) error {
	if name == "" {
		return fmt.Errorf("renderer name is empty")
	}
	if r == nil {
		return fmt.Errorf("renderer %s is nil", name)
	}

	globalMu.Lock()
	defer globalMu.Unlock()

	if _, exists := globalRenderers[name]; exists {
		return fmt.Errorf("renderer %s already registered", name)
	}

	globalRenderers[name] = r
	return nil
}

// MustRegister is a convenience function that panics on registration error.
// Use this in init() functions where registration must succeed.
func MustRegister(name string, r Renderer) {
	if err := Register(name, r); err != nil {
		panic(err)
	}
}

// NewFromGlobal creates a new Registry populated with all globally registered renderers.
func NewFromGlobal() *Registry {
	globalMu.RLock()
	defer globalMu.RUnlock()

	reg := NewRegistry()
	for name, r := range globalRenderers {
		reg.renderers[name] = r
	}
	return reg
}

// Registry manages named renderers with thread-safe operations.
type Registry struct {
	renderers map[string]Renderer
	mu        sync.RWMutex
}

// NewRegistry creates a new empty Registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// Register registers a renderer in this registry, replacing any previous one with the same name.
func (r *Registry) Register(name string, renderer Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[name] = renderer
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[name]
	return renderer, ok
}

// Resolve retrieves a renderer by name and fails with a CONFIGURATION_ERROR
// when the name is empty or unknown.
func (r *Registry) Resolve(name string) (Renderer, error) {
	if name == "" {
		return nil, errors.New(errors.ErrCodeConfiguration, "renderer name is empty")
	}
	renderer, ok := r.Get(name)
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeConfiguration,
			fmt.Sprintf("renderer %q is not registered", name),
			map[string]any{"callback": name, "available": r.List()})
	}
	return renderer, nil
}

// List returns all registered renderer names, sorted.
func (r *Registry) List() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
