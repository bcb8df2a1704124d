// Copyright (c) 2025, the pyver authors.  All rights reserved.
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

// Package defaults centralizes timeout values used across the codebase.
//
// Keeping these in one place makes the relationships between them visible:
// handler timeouts must fit inside server write timeouts, and connect
// timeouts must fit inside total client timeouts. Change them here rather
// than scattering literals through handlers and clients.
package defaults
