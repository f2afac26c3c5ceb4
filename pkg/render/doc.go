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

// Package render provides the named cell renderers that list-table column
// descriptors refer to by callback name.
//
// A Renderer receives the descriptor's extra arguments with the current
// record identifier appended as the last element and returns the value to
// print, or nil for no output.
//
// Renderers are collected in a Registry. Packages register process-wide
// renderers from init() with MustRegister; NewFromGlobal snapshots them
// into a Registry that can be extended per content type:
//
//	func init() {
//		render.MustRegister("price", render.Func(formatPrice))
//	}
//
//	reg := render.NewFromGlobal()
//	r, err := reg.Resolve("price")
//
// Built-in renderers: record-id, sprintf, join.
package render
