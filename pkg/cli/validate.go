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
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a content type manifest",
		Description: `Constructs every entry of a manifest, pending ones included, against a
scratch host. Reports invalid identifiers, empty configurations and column
callbacks that cannot be resolved.

# Examples

Validate a manifest:
  ctypes validate -f manifest.yaml

Report only, without failing the command:
  ctypes validate -f manifest.yaml --fail-on-error=false`,
		Flags: []cli.Flag{
			manifestFlag(),
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Value: true,
				Usage: "Exit with non-zero status if any entry fails validation",
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

			report := gateway.ValidateManifest(ctx, m)
			if err := writeResult(ctx, cmd, outFormat, report); err != nil {
				return fmt.Errorf("failed to serialize validation report: %w", err)
			}

			slog.Info("validation completed",
				"valid", report.Valid,
				"entries", len(report.Entries),
				"failed", report.Failed())

			if cmd.Bool("fail-on-error") && !report.Valid {
				if report.Error != "" {
					return fmt.Errorf("manifest is invalid: %s", report.Error)
				}
				return fmt.Errorf("manifest is invalid: %d entries failed validation", report.Failed())
			}
			return nil
		},
	}
}
