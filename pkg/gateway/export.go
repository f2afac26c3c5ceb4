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
	"github.com/cmskit/contenttypes/pkg/header"
	"github.com/cmskit/contenttypes/pkg/host"
)

// Registration is the resolved registration of one content type.
type Registration struct {
	PostTypeName string                      `json:"postTypeName" yaml:"postTypeName"`
	Args         *host.RegistrationArguments `json:"args" yaml:"args"`
}

// RegistrationSet is the exported document listing what a provider would
// hand to the host, in load order.
type RegistrationSet struct {
	header.Header `json:",inline" yaml:",inline"`

	Registrations []Registration `json:"registrations" yaml:"registrations"`
}

// RegistrationSet resolves the registration arguments of every tracked
// definition. version is recorded in the document metadata.
func (p *Provider) RegistrationSet(version string) *RegistrationSet {
	ids := p.ContentTypes()

	rs := &RegistrationSet{
		Registrations: make([]Registration, 0, len(ids)),
	}
	rs.Init(header.KindRegistrationSet, header.APIVersionV1, version)

	for _, id := range ids {
		d, ok := p.Get(id)
		if !ok {
			continue
		}
		rs.Registrations = append(rs.Registrations, Registration{
			PostTypeName: id,
			Args:         d.BuildArgs(),
		})
	}
	return rs
}
