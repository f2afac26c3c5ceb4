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
	"log/slog"

	"github.com/cmskit/contenttypes/pkg/contenttype"
	"github.com/cmskit/contenttypes/pkg/host"
)

// Bind subscribes d to the host events. Per-type hooks are only subscribed
// when their configuration section is non-empty.
func Bind(d *contenttype.Definition, events host.Events) {
	id := d.ID()

	events.OnInit(func(ctx context.Context) error {
		if d.Closed() {
			return nil
		}
		return d.Register(ctx)
	})

	if d.HasColumnsFilter() {
		events.OnColumnsFilter(id, d.FilterColumns)
	}
	if d.HasColumnsData() {
		events.OnColumnData(id, d.RenderColumnData)
	}
	if d.HasSortableColumns() {
		events.OnSortableColumns(id, d.MakeColumnsSortable)
	}

	events.OnRequest(d.FilterFeed)

	slog.Debug("content type bound",
		"contentType", id,
		"columnsFilter", d.HasColumnsFilter(),
		"columnsData", d.HasColumnsData(),
		"sortableColumns", d.HasSortableColumns())
}

// New constructs a Definition and binds it to h. Nothing is subscribed or
// acquired when construction fails.
func New(id string, cfg *contenttype.Config, h host.Host, opts ...contenttype.Option) (*contenttype.Definition, error) {
	d, err := contenttype.New(id, cfg, h, opts...)
	if err != nil {
		return nil, err
	}
	Bind(d, h)
	return d, nil
}
