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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/cmskit/contenttypes/pkg/gateway"
	"github.com/cmskit/contenttypes/pkg/host"
)

// flushResult is the document written by the flush command.
type flushResult struct {
	ContentTypes []string `json:"contentTypes" yaml:"contentTypes"`
	Generation   uint64   `json:"generation" yaml:"generation"`
}

func flushCmd() *cli.Command {
	return &cli.Command{
		Name:                  "flush",
		EnableShellCompletion: true,
		Usage:                 "Register every content type and flush rewrite rules",
		Description: `Loads a manifest into an in-memory host, registers every loaded content
type in one batch and regenerates the routing rules once.

# Examples

  ctypes flush -f manifest.yaml`,
		Flags: []cli.Flag{
			manifestFlag(),
			outputFlag(),
			formatFlag(),
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			m, err := loadManifest(cmd)
			if err != nil {
				return err
			}

			h := host.NewMemory()
			p := gateway.NewProvider(h)
			defer func() {
				if err := p.Close(); err != nil {
					slog.Warn("failed to close provider", "error", err)
				}
			}()

			if err := p.Load(m); err != nil {
				return fmt.Errorf("failed to load content types: %w", err)
			}
			if err := p.FlushRewriteRules(ctx); err != nil {
				return fmt.Errorf("failed to flush rewrite rules: %w", err)
			}

			res := flushResult{
				ContentTypes: h.ContentTypes(false),
				Generation:   h.RewriteGeneration(),
			}
			slog.Info("rewrite rules flushed",
				"contentTypes", len(res.ContentTypes),
				"generation", res.Generation)

			return writeResult(ctx, cmd, outFormat, res)
		},
	}
}
