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

func argsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "args",
		EnableShellCompletion: true,
		Usage:                 "Export the resolved registration arguments of a manifest",
		Description: `Constructs every autoload entry of a manifest and exports the
registration arguments each content type hands to the host: labels merged
over the defaults, resolved supports and normalized taxonomies.

# Examples

Print the arguments of a manifest as YAML:
  ctypes args -f manifest.yaml

Include entries that are not autoloaded:
  ctypes args -f manifest.yaml --include-pending

Store the result in a ConfigMap:
  ctypes args -f manifest.yaml -o cm://cms/content-types`,
		Flags: []cli.Flag{
			manifestFlag(),
			&cli.BoolFlag{
				Name:  "include-pending",
				Usage: "Also resolve manifest entries without autoload",
			},
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

			p := gateway.NewProvider(host.NewMemory())
			defer func() {
				if err := p.Close(); err != nil {
					slog.Warn("failed to close provider", "error", err)
				}
			}()

			if err := p.Load(m); err != nil {
				return fmt.Errorf("failed to load content types: %w", err)
			}
			if cmd.Bool("include-pending") {
				if err := p.ActivateAll(); err != nil {
					return fmt.Errorf("failed to activate pending content types: %w", err)
				}
			}

			rs := p.RegistrationSet(version)
			slog.Info("registration arguments resolved", "contentTypes", len(rs.Registrations))

			if err := writeResult(ctx, cmd, outFormat, rs); err != nil {
				return fmt.Errorf("failed to serialize registration arguments: %w", err)
			}
			return nil
		},
	}
}
