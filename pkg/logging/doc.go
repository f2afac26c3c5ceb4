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

// Package logging provides structured logging utilities for the content type
// tooling.
//
// It wraps log/slog with a JSON handler on stderr, environment-based level
// selection (LOG_LEVEL), module/version attributes on every record and source
// locations at debug level.
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("ctypes", version)
//	    slog.Info("content type registered", "contentType", "book")
//	}
//
// Explicit level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("ctypes", version, "debug")
//
// Supported levels (case-insensitive): debug, info (default), warn/warning, error.
package logging
