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
	"github.com/cmskit/contenttypes/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Serve the admin HTTP API over a manifest",
		Description: `Loads a manifest into an in-memory host, raises the host init event so
every autoload content type is registered, and serves the admin API until
interrupted.

# Examples

  ctypes serve -f manifest.yaml --port 9090`,
		Flags: []cli.Flag{
			manifestFlag(),
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to listen on (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Usage:   "Port to listen on",
				Sources: cli.EnvVars("PORT"),
			},
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
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
			if err := h.Init(ctx); err != nil {
				return fmt.Errorf("failed to register content types: %w", err)
			}

			cfg := server.NewConfig()
			cfg.Name = name
			cfg.Version = version
			cfg.Address = cmd.String("address")
			cfg.Port = cmd.Int("port")

			return server.NewServer(cfg, p, h).Start(ctx)
		},
	}
}
