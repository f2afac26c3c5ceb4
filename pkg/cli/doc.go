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

/*
Package cli implements the ctypes command-line interface.

# Commands

args - Export resolved registration arguments:

	ctypes args -f manifest.yaml [--include-pending] [--format json] [--output cm://cms/content-types]

Constructs every autoload entry of the manifest and writes a RegistrationSet
document with the arguments each content type hands to the host.

validate - Validate a manifest:

	ctypes validate -f manifest.yaml

Constructs every entry against a scratch host and reports invalid
identifiers, empty configurations and unresolvable column callbacks.

flush - Register and flush:

	ctypes flush -f manifest.yaml

serve - Serve the admin HTTP API:

	ctypes serve -f manifest.yaml --port 9090

# Global Flags

	--log-level    Log level: debug, info, warn, error (default: info)
	--help, -h     Show command help
	--version, -v  Show version information

# Command Flags

	--manifest, -f    Manifest path or ConfigMap URI (cm://namespace/name)
	--output, -o      Output file path or ConfigMap URI (default: stdout)
	--format, -t      Output format: yaml, json, table (default: yaml)
	--kubeconfig, -k  Kubeconfig used for ConfigMap URIs

# Environment Variables

	LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
	PORT        Port of the serve command
	KUBECONFIG  Kubeconfig used when --kubeconfig is not set

# Exit Codes

	0  Success
	1  General error (invalid arguments, invalid manifest, execution failure)
*/
package cli
