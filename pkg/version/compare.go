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
	"math"
	"sort"
)

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareRelease compares the release parts of two versions, e.g.
// 4.3.1 > 4.2, 1.1.0 == 1.1 and 1.16 < 1.19. The shorter segment is padded
// out with zeros.
func compareRelease(a, b []int) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if c := intCompare(av, bv); c != 0 {
			return c
		}
	}
	return 0
}

// suffixKey orders the parts attached after an equal release.
//
// Per the PEP 440 summary of permitted suffixes the order is
// .devN < aN < bN < rcN < final < .postN, but dev and post releases can
// also ride on prereleases, so the key carries five stages: a post number
// (absent ranks below 0) and a dev number (absent ranks above any number).
type suffixKey struct {
	stage int
	pre   int
	post  int // -1 when absent
	dev   int // math.MaxInt when absent
}

func (v Version) suffixKey() suffixKey {
	post := -1
	if v.Post != nil {
		post = *v.Post
	}
	dev := math.MaxInt
	if v.Dev != nil {
		dev = *v.Dev
	}

	switch {
	case v.Pre != nil:
		return suffixKey{stage: v.Pre.Kind.rank(), pre: v.Pre.Number, post: post, dev: dev}
	case v.Post != nil:
		return suffixKey{stage: 5, post: post, dev: dev}
	case v.Dev != nil:
		// bare dev release
		return suffixKey{stage: 0, post: -1, dev: *v.Dev}
	default:
		// final release
		return suffixKey{stage: 4, post: -1, dev: 0}
	}
}

func compareLocal(a, b []LocalSegment) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].compare(b[i]); c != 0 {
			return c
		}
	}
	// a longer local version ranks above its own prefix
	return intCompare(len(a), len(b))
}

// Compare returns an integer ordering two versions per PEP 440:
// -1 if v < other, 0 if v == other, 1 if v > other. For example
// 1.0.dev456 < 1.0a1 < 1.0b2.post345 < 1.0rc1 < 1.0 < 1.0+abc < 1.0.post456.
// Useful for sorting. Note that specifier matching layers extra rules on
// top of this ordering; use Specifier.Contains for matching.
func (v Version) Compare(other Version) int {
	if c := intCompare(v.Epoch, other.Epoch); c != 0 {
		return c
	}
	if c := compareRelease(v.Release, other.Release); c != 0 {
		return c
	}

	ka, kb := v.suffixKey(), other.suffixKey()
	if c := intCompare(ka.stage, kb.stage); c != 0 {
		return c
	}
	if c := intCompare(ka.pre, kb.pre); c != 0 {
		return c
	}
	if c := intCompare(ka.post, kb.post); c != 0 {
		return c
	}
	if c := intCompare(ka.dev, kb.dev); c != 0 {
		return c
	}
	return compareLocal(v.Local, other.Local)
}

// Equal returns true if both versions normalize to the same value. Trailing
// zero release segments are insignificant: 1.0 == 1 == 1.0.0.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// LessThan returns true if v orders strictly before other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// GreaterThan returns true if v orders strictly after other.
func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}

// Sort orders versions in place, ascending per Compare.
func Sort(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) < 0
	})
}
