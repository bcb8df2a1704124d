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
	"testing"
)

// FuzzParseVersion performs fuzz testing on ParseVersion to find edge cases
func FuzzParseVersion(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("1")
	f.Add("v1.2.3")
	f.Add("1.19")
	f.Add("1.0a1")
	f.Add("1.0-alpha.1")
	f.Add("1.0.post456.dev34")
	f.Add("4!5.6.7-a8.post9.dev0")
	f.Add("1.2+1234.abc")
	f.Add("1.0+ubuntu-1")
	f.Add("   v1.0\t\n")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("v")
	f.Add("vv1")
	f.Add("-1")
	f.Add("1.0a-")
	f.Add("1.0+")
	f.Add("1.0++")
	f.Add("0.9.1.*")
	f.Add("french toast")
	f.Add("999999999999999999999999")

	f.Fuzz(func(t *testing.T, input string) {
		// ParseVersion should never panic
		v, err := ParseVersion(input)
		if err != nil {
			return
		}

		// Successful parses render a canonical form that round-trips to an
		// equal version
		s := v.String()
		again, err := ParseVersion(s)
		if err != nil {
			t.Errorf("canonical form %q of %q does not re-parse: %v", s, input, err)
			return
		}
		if !again.Equal(v) {
			t.Errorf("canonical form %q of %q is not equal after re-parsing", s, input)
		}
		if again.String() != s {
			t.Errorf("canonical form is not a fixed point: %q -> %q", s, again.String())
		}

		// Comparison against itself is reflexive
		if v.Compare(v) != 0 {
			t.Errorf("version %q does not equal itself", s)
		}
	})
}

// FuzzParseSpecifier checks that specifier parsing never panics and that
// accepted clauses render a canonical form that re-parses.
func FuzzParseSpecifier(f *testing.F) {
	f.Add(">=1.0")
	f.Add("== 1.1.*")
	f.Add("!= 1.3.4.*")
	f.Add("~= 0.9")
	f.Add("===1.2a1")
	f.Add("<=1!2012.2")
	f.Add(" >=1.19-alpha.1 ")
	f.Add("=>2.0")
	f.Add("==")
	f.Add("blergh")

	f.Fuzz(func(t *testing.T, input string) {
		spec, err := ParseSpecifier(input)
		if err != nil {
			return
		}

		s := spec.String()
		again, err := ParseSpecifier(s)
		if err != nil {
			t.Errorf("canonical form %q of %q does not re-parse: %v", s, input, err)
			return
		}
		if again.String() != s {
			t.Errorf("canonical form is not a fixed point: %q -> %q", s, again.String())
		}
	})
}
