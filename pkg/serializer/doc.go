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

// Package serializer reads and writes content type documents.
//
// Supported formats:
//   - JSON: indented, for APIs and tooling
//   - YAML: for manifests kept in version control
//   - Table: flattened FIELD/VALUE rows for terminals (write only)
//
// Destinations and sources are chosen by path:
//   - "" writes to stdout
//   - a file path; the format is taken from the extension when reading
//   - cm://namespace/name reads from or applies to a Kubernetes ConfigMap
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, output)
//	defer w.Close()
//	if err := w.Serialize(ctx, set); err != nil {
//		return err
//	}
//
// Reading:
//
//	m, err := serializer.FromFile[gateway.Manifest]("cm://cms/content-types")
//
// HTTP handlers use RespondJSON, which encodes into a buffer before writing
// headers so a failed encode never produces a partial response.
package serializer
