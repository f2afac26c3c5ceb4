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
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/cmskit/contenttypes/pkg/defaults"
	"github.com/cmskit/contenttypes/pkg/errors"
	"github.com/cmskit/contenttypes/pkg/host"
	"github.com/cmskit/contenttypes/pkg/render"
)

// Host is the part of the host a Definition consumes.
type Host interface {
	host.Registrar
	host.SupportsProvider
	host.Registry
}

// Definition is one configured content type.
//
// New acquires the identifier in the host registry; Close releases it.
// The hook methods (FilterColumns, RenderColumnData, MakeColumnsSortable,
// FilterFeed, SortColumnsBy) are safe for concurrent use.
type Definition struct {
	id           string
	cfg          *Config
	host         Host
	renderers    *render.Registry
	baselineType string
	logger       *slog.Logger

	mu       sync.Mutex
	supports *SupportsResolver
	closed   bool
}

// Option is a functional option for configuring a Definition.
type Option func(*Definition)

// WithRenderers sets the registry column callbacks are resolved from.
// Defaults to render.NewFromGlobal().
func WithRenderers(r *render.Registry) Option {
	return func(d *Definition) {
		d.renderers = r
	}
}

// WithBaselineType sets the content type whose features are the baseline.
func WithBaselineType(name string) Option {
	return func(d *Definition) {
		d.baselineType = name
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Definition) {
		d.logger = l
	}
}

// New validates the identifier and configuration and acquires id in the
// host registry. On failure nothing is left in the registry.
func New(id string, cfg *Config, h Host, opts ...Option) (*Definition, error) {
	if err := ValidateIdentifier(id); err != nil {
		return nil, err
	}
	if cfg.IsEmpty() {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidConfiguration,
			fmt.Sprintf("configuration for content type %s cannot be empty", id),
			map[string]any{"contentType": id})
	}
	if h == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "host is required")
	}

	d := &Definition{
		id:           id,
		cfg:          cfg,
		host:         h,
		baselineType: defaults.BaselineContentType,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.renderers == nil {
		d.renderers = render.NewFromGlobal()
	}
	d.logger = d.logger.With("contentType", id)
	d.supports = NewSupportsResolver(h, d.baselineType)

	if err := h.Acquire(id); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeConflict,
			fmt.Sprintf("content type %s is already registered", id), err,
			map[string]any{"contentType": id})
	}

	d.logger.Debug("content type defined", "addFeed", cfg.AddFeed)
	return d, nil
}

// ValidateIdentifier checks id is non-empty, lowercase and free of spaces.
func ValidateIdentifier(id string) error {
	if id == "" {
		return errors.New(errors.ErrCodeInvalidConfiguration, "content type identifier cannot be empty")
	}
	if strings.ContainsFunc(id, unicode.IsSpace) || strings.ToLower(id) != id {
		return errors.NewWithContext(errors.ErrCodeInvalidConfiguration,
			fmt.Sprintf("content type identifier %q must be lowercase without spaces", id),
			map[string]any{"contentType": id})
	}
	return nil
}

// ID returns the content type identifier.
func (d *Definition) ID() string {
	return d.id
}

// Config returns the configuration. It must not be modified.
func (d *Definition) Config() *Config {
	return d.cfg
}

// BuildArgs resolves labels, features and taxonomies into the arguments
// handed to the host.
func (d *Definition) BuildArgs() *host.RegistrationArguments {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buildArgs()
}

func (d *Definition) buildArgs() *host.RegistrationArguments {
	a := &d.cfg.Args
	return &host.RegistrationArguments{
		Labels:       BuildLabels(d.id, d.cfg),
		Supports:     d.supports.Resolve(a, d.cfg.AdditionalSupports),
		Hierarchical: a.Hierarchical,
		Taxonomies:   NormalizeTaxonomies(a.Taxonomies),
		Public:       a.Public,
		ShowInREST:   a.ShowInREST,
		HasArchive:   a.HasArchive,
		MenuIcon:     a.MenuIcon,
		Description:  a.Description,
		Extra:        maps.Clone(a.Extra),
	}
}

// Register submits the resolved arguments to the host. Host failures are
// returned as is.
func (d *Definition) Register(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return errors.New(errors.ErrCodeUnavailable, fmt.Sprintf("content type %s is closed", d.id))
	}
	args := d.buildArgs()
	d.mu.Unlock()

	if err := d.host.RegisterContentType(ctx, d.id, args); err != nil {
		registrationsTotal.WithLabelValues(d.id, "error").Inc()
		return fmt.Errorf("register content type %s: %w", d.id, err)
	}

	registrationsTotal.WithLabelValues(d.id, "success").Inc()
	d.logger.Info("content type registered", "supports", args.Supports, "taxonomies", args.Taxonomies)
	return nil
}

// Supports returns the features resolved by the most recent BuildArgs or Register.
func (d *Definition) Supports() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.supports.Last()
}

// HasColumnsFilter reports whether a columns filter is configured.
func (d *Definition) HasColumnsFilter() bool {
	return len(d.cfg.ColumnsFilter) > 0
}

// HasColumnsData reports whether column renderers are configured.
func (d *Definition) HasColumnsData() bool {
	return len(d.cfg.ColumnsData) > 0
}

// HasSortableColumns reports whether sortable columns are configured.
func (d *Definition) HasSortableColumns() bool {
	return len(d.cfg.SortableColumns) > 0
}

// FilterFeed adds this content type to or removes it from the post_type
// list of a feed request, according to AddFeed. qv is modified in place.
func (d *Definition) FilterFeed(qv host.QueryVars) host.QueryVars {
	d.mu.Lock()
	closed := d.closed
	d.mu.Unlock()
	if closed {
		return qv
	}

	action := applyFeedMembership(qv, d.id, d.cfg.AddFeed)
	if qv.IsFeed() {
		feedActionsTotal.WithLabelValues(d.id, action.String()).Inc()
		d.logger.Debug("feed membership applied", "action", action.String())
	}
	return qv
}

// FilterColumns applies the configured column transformers in order.
func (d *Definition) FilterColumns(cols *host.Columns) *host.Columns {
	if cols == nil {
		cols = host.NewColumns()
	}
	for _, t := range d.cfg.ColumnsFilter.Transformers() {
		t.Transform(cols)
	}
	return cols
}

// RenderColumnData renders the cell of column for recordID into w.
//
// Columns without a descriptor or callback are skipped. An unknown callback
// fails with CONFIGURATION_ERROR naming the column and content type;
// a failing renderer fails with INTERNAL.
func (d *Definition) RenderColumnData(ctx context.Context, w io.Writer, column string, recordID int64) error {
	desc, ok := d.cfg.ColumnsData[column]
	if !ok || desc.Callback == "" {
		return nil
	}

	errCtx := map[string]any{
		"column":      column,
		"callback":    desc.Callback,
		"contentType": d.id,
	}

	r, err := d.renderers.Resolve(desc.Callback)
	if err != nil {
		columnRenderErrors.WithLabelValues(d.id, column, string(errors.ErrCodeConfiguration)).Inc()
		return errors.WrapWithContext(errors.ErrCodeConfiguration,
			fmt.Sprintf("callback %q of column %s for content type %s cannot be resolved", desc.Callback, column, d.id),
			err, errCtx)
	}

	args := append(slices.Clone(desc.Args), recordID)
	out, err := r.Render(ctx, args)
	if err != nil {
		columnRenderErrors.WithLabelValues(d.id, column, string(errors.ErrCodeInternal)).Inc()
		return errors.WrapWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("render column %s for content type %s", column, d.id), err, errCtx)
	}

	columnRendersTotal.WithLabelValues(d.id, column).Inc()
	if !desc.ShouldEcho() || out == nil {
		return nil
	}
	if _, err := fmt.Fprint(w, out); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "write column output", err, errCtx)
	}
	return nil
}

// CheckCallbacks resolves the callback of every column descriptor and
// returns the CONFIGURATION_ERRORs of those that cannot be resolved.
func (d *Definition) CheckCallbacks() error {
	var errs []error
	for _, column := range slices.Sorted(maps.Keys(d.cfg.ColumnsData)) {
		desc := d.cfg.ColumnsData[column]
		if desc.Callback == "" {
			continue
		}
		if _, err := d.renderers.Resolve(desc.Callback); err != nil {
			errs = append(errs, errors.WrapWithContext(errors.ErrCodeConfiguration,
				fmt.Sprintf("callback %q of column %s for content type %s cannot be resolved", desc.Callback, column, d.id),
				err, map[string]any{
					"column":      column,
					"callback":    desc.Callback,
					"contentType": d.id,
				}))
		}
	}
	return stderrors.Join(errs...)
}

// MakeColumnsSortable marks every configured sortable column as sortable
// by itself.
func (d *Definition) MakeColumnsSortable(cols host.SortableColumns) host.SortableColumns {
	if cols == nil {
		cols = host.SortableColumns{}
	}
	for _, key := range d.cfg.SortableColumns {
		cols[key] = key
	}
	return cols
}

// SortColumnsBy is reserved for applying SortColumnsBy to list queries.
// It returns qv unchanged.
func (d *Definition) SortColumnsBy(qv host.QueryVars) host.QueryVars {
	return qv
}

// Closed reports whether Close has been called.
func (d *Definition) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// Close releases the identifier from the host registry. It is safe to call
// more than once; only the first call releases.
func (d *Definition) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	if !d.host.Release(d.id) {
		d.logger.Warn("content type was not present in host registry at close")
	}
	d.logger.Debug("content type closed")
	return nil
}
