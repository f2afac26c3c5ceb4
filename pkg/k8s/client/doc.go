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

// Package client provides the Kubernetes client used for ConfigMap manifest
// sources and registration exports.
//
// GetKubeClient returns a process-wide client built once with default
// discovery:
//
//  1. KUBECONFIG environment variable
//  2. ~/.kube/config, when present
//  3. in-cluster service account
//
// GetKubeClientWithConfig and BuildKubeClient build uncached clients for an
// explicit kubeconfig, as used by the CLI --kubeconfig flag.
//
// Interface aliases kubernetes.Interface so tests can pass
// k8s.io/client-go/kubernetes/fake clientsets wherever a client is accepted.
package client
