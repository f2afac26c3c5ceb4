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
	"github.com/cmskit/contenttypes/pkg/serializer"
)

func manifestFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "manifest",
		Aliases:  []string{"f"},
		Required: true,
		Usage: `Path/URI to the content type manifest.
	Supports: file paths or ConfigMap URIs (cm://namespace/name).`,
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage: `Output destination (default: stdout).
	Supports: file paths or ConfigMap URIs (cm://namespace/name).`,
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

func kubeconfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kubeconfig",
		Aliases: []string{"k"},
		Usage:   "Path to kubeconfig for ConfigMap URIs (default: KUBECONFIG or ~/.kube/config)",
	}
}

// parseOutputFormat returns the --format value or an error when it is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// loadManifest reads the manifest named by --manifest.
func loadManifest(cmd *cli.Command) (*gateway.Manifest, error) {
	path := cmd.String("manifest")
	slog.Info("loading manifest", "uri", path)

	m, err := serializer.FromFileWithKubeconfig[gateway.Manifest](path, cmd.String("kubeconfig"))
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest from %q: %w", path, err)
	}
	return m, nil
}

// writeResult serializes v with the --format and --output of cmd.
func writeResult(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) error {
	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()
	return ser.Serialize(ctx, v)
}
