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

package version

import (
	"fmt"
	"strings"
)

// Specifiers is a conjunctive set of version clauses, e.g.
// ">=1.16, <2.0": a version must satisfy every member.
type Specifiers []Specifier

// ParseSpecifiers parses a comma-separated list of clauses such as
// ">= 1.0, != 1.3.*, < 2.0". An error names the clause that failed.
func ParseSpecifiers(s string) (Specifiers, error) {
	var specs Specifiers
	for _, clause := range strings.Split(s, ",") {
		spec, err := ParseSpecifier(clause)
		if err != nil {
			return nil, fmt.Errorf("invalid clause %q: %w", strings.TrimSpace(clause), err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// MustParseSpecifiers parses a specifier list and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParseSpecifiers(s string) Specifiers {
	specs, err := ParseSpecifiers(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseSpecifiers: %v", err))
	}
	return specs
}

// Contains returns true if the version satisfies every clause in the set.
// An empty set contains everything.
func (s Specifiers) Contains(v Version) bool {
	for _, spec := range s {
		if !spec.Contains(v) {
			return false
		}
	}
	return true
}

// ContainsWith evaluates Contains under the given options.
func (s Specifiers) ContainsWith(v Version, opts MatchOptions) bool {
	for _, spec := range s {
		if !spec.ContainsWith(v, opts) {
			return false
		}
	}
	return true
}

// Filter returns the versions from the input that satisfy the set,
// preserving input order.
func (s Specifiers) Filter(versions []Version) []Version {
	var out []Version
	for _, v := range versions {
		if s.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// String renders the canonical comma-joined form, e.g. ">= 1.16, < 2.0".
func (s Specifiers) String() string {
	parts := make([]string, 0, len(s))
	for _, spec := range s {
		parts = append(parts, spec.String())
	}
	return strings.Join(parts, ", ")
}
