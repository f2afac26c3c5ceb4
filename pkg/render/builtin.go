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

package render

import (
	"context"
	"fmt"
	"strings"
)

// Built-in renderer names.
const (
	RecordID = "record-id"
	Sprintf  = "sprintf"
	Join     = "join"
)

func init() {
	MustRegister(RecordID, Func(recordID))
	MustRegister(Sprintf, Func(sprintf))
	MustRegister(Join, Func(join))
}

// recordID returns the trailing record identifier.
func recordID(_ context.Context, args []any) (any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	return args[len(args)-1], nil
}

// sprintf formats the remaining arguments with the first one as format string.
func sprintf(_ context.Context, args []any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("sprintf requires a format argument")
	}
	format, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("sprintf format must be a string, got %T", args[0])
	}
	return fmt.Sprintf(format, args[1:]...), nil
}

// join concatenates all arguments separated by ", ".
func join(_ context.Context, args []any) (any, error) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.Join(parts, ", "), nil
}
