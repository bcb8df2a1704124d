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
	"log/slog"
	"strconv"
	"strings"
)

// Operator is one of the PEP 440 comparison operators. The star forms of
// "==" and "!=" (prefix matching, e.g. "== 1.1.*") are distinct operator
// values: the star is carried on the operator, not in the release.
type Operator int

const (
	// OpEqual is "== 1.2.3"
	OpEqual Operator = iota
	// OpEqualStar is "== 1.2.*"
	OpEqualStar
	// OpExactEqual is "===", arbitrary string equality. Heavily discouraged
	// by PEP 440.
	OpExactEqual
	// OpNotEqual is "!= 1.2.3"
	OpNotEqual
	// OpNotEqualStar is "!= 1.2.*"
	OpNotEqualStar
	// OpTildeEqual is "~=", the compatible release clause
	OpTildeEqual
	// OpLessThan is "<"
	OpLessThan
	// OpLessThanEqual is "<="
	OpLessThanEqual
	// OpGreaterThan is ">"
	OpGreaterThan
	// OpGreaterThanEqual is ">="
	OpGreaterThanEqual
)

func (o Operator) String() string {
	switch o {
	case OpEqual, OpEqualStar:
		return "=="
	case OpExactEqual:
		return "==="
	case OpNotEqual, OpNotEqualStar:
		return "!="
	case OpTildeEqual:
		return "~="
	case OpLessThan:
		return "<"
	case OpLessThanEqual:
		return "<="
	case OpGreaterThan:
		return ">"
	default:
		return ">="
	}
}

func (o Operator) isStar() bool {
	return o == OpEqualStar || o == OpNotEqualStar
}

// ParseOperator maps an operator token to its Operator value. It does not
// know about star versions; ParseSpecifier switches "==" and "!=" to their
// star forms when the version ends in ".*".
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "==":
		return OpEqual, nil
	case "===":
		slog.Warn("using arbitrary equality (===) is discouraged")
		return OpExactEqual, nil
	case "!=":
		return OpNotEqual, nil
	case "~=":
		return OpTildeEqual, nil
	case "<":
		return OpLessThan, nil
	case "<=":
		return OpLessThanEqual, nil
	case ">":
		return OpGreaterThan, nil
	case ">=":
		return OpGreaterThanEqual, nil
	default:
		return 0, fmt.Errorf("%w: no such operator %q, must be one of ~= == != <= >= < > ===", ErrInvalidSpecifier, s)
	}
}

// Specifier is a single version clause such as ">1.2.3",
// "<=4!5.6.7-a8.post9.dev0" or "== 4.1.*". Parse with ParseSpecifier.
// Immutable once parsed.
type Specifier struct {
	Op      Operator
	Version Version
}

// NewSpecifier builds a specifier from parts, validating that the operator
// is allowed with that version: local version labels are only permitted
// with "==", "!=" and "===", and "~=" needs at least two release parts.
func NewSpecifier(op Operator, v Version) (Specifier, error) {
	if v.IsLocal() {
		switch op {
		case OpGreaterThan, OpGreaterThanEqual, OpLessThan, OpLessThanEqual,
			OpTildeEqual, OpEqualStar, OpNotEqualStar:
			return Specifier{}, fmt.Errorf("%w: %s with +%s", ErrLocalOperator, op, localString(v.Local))
		}
	}
	if op == OpTildeEqual && len(v.Release) < 2 {
		return Specifier{}, ErrTildeRelease
	}
	return Specifier{Op: op, Version: v}, nil
}

func localString(local []LocalSegment) string {
	parts := make([]string, 0, len(local))
	for _, s := range local {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ".")
}

// ParseSpecifier parses a single clause such as ">= 1.19", "== 1.1.*",
// "~=1.0+abc.5" or "<=1!2012.2". Whitespace around and between the
// operator and the version is tolerated.
// Returns a wrapped ErrInvalidSpecifier (or one of the star/local/tilde
// errors) when the input does not conform.
func ParseSpecifier(s string) (Specifier, error) {
	match := specifierRe.FindStringSubmatch(s)
	if match == nil {
		return Specifier{}, fmt.Errorf("%w: %q", ErrInvalidSpecifier, s)
	}

	epoch, pre, post, dev, local, err := parseModifiers(specifierRe, match)
	if err != nil {
		return Specifier{}, err
	}

	op, err := ParseOperator(group(specifierRe, match, "operator"))
	if err != nil {
		return Specifier{}, err
	}

	// collect numeric release parts up to the first star
	segments := strings.Split(group(specifierRe, match, "release"), ".")
	var release []int
	star := false
	for i, segment := range segments {
		if segment == "*" {
			star = true
			// everything after the star must be a star as well
			for _, rest := range segments[i+1:] {
				if rest != "*" {
					return Specifier{}, fmt.Errorf("%w: %q", ErrStarPlacement, s)
				}
			}
			break
		}
		n, err := strconv.Atoi(segment)
		if err != nil {
			return Specifier{}, fmt.Errorf("%w: release part %q is not a number", ErrInvalidSpecifier, segment)
		}
		release = append(release, n)
	}

	if star {
		if len(release) == 0 {
			// a prefix match needs at least one numeric release part
			return Specifier{}, fmt.Errorf("%w: %q", ErrInvalidSpecifier, s)
		}
		switch op {
		case OpEqual:
			op = OpEqualStar
		case OpNotEqual:
			op = OpNotEqualStar
		default:
			return Specifier{}, fmt.Errorf("%w: %s", ErrStarOperator, op)
		}
	}

	return NewSpecifier(op, Version{
		Epoch:   epoch,
		Release: release,
		Pre:     pre,
		Post:    post,
		Dev:     dev,
		Local:   local,
	})
}

// MustParseSpecifier parses a specifier string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParseSpecifier(s string) Specifier {
	spec, err := ParseSpecifier(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseSpecifier: %v", err))
	}
	return spec
}

// String renders the canonical form: the operator, a single space, and the
// canonical version (star forms append ".*"), e.g. ">= 1.19a1".
func (s Specifier) String() string {
	v := s.Version.String()
	if s.Op.isStar() {
		v += ".*"
	}
	return fmt.Sprintf("%s %s", s.Op, v)
}

// prefixMatch reports whether the release parts match pairwise up to the
// shorter of the two, i.e. whether cand falls under the spec prefix once
// missing parts are zero-padded.
func prefixMatch(spec, cand []int) bool {
	for i := 0; i < len(spec) && i < len(cand); i++ {
		if spec[i] != cand[i] {
			return false
		}
	}
	return true
}

// Contains evaluates whether the given version satisfies this clause,
// e.g. ">=1.19" contains 1.21.
//
// Local version labels are ignored entirely unless the specifier itself
// carries one. Prerelease versions are included by default; use
// ContainsWith to exclude them.
func (s Specifier) Contains(v Version) bool {
	spec, cand := s.Version, v
	if !spec.IsLocal() {
		// spec is already without a local label
		cand = cand.WithoutLocal()
	}

	switch s.Op {
	case OpEqual:
		return cand.Equal(spec)
	case OpEqualStar:
		return spec.Epoch == cand.Epoch && prefixMatch(spec.Release, cand.Release)
	case OpExactEqual:
		return s.Version.String() == v.String()
	case OpNotEqual:
		return !cand.Equal(spec)
	case OpNotEqualStar:
		return spec.Epoch != cand.Epoch || !prefixMatch(spec.Release, cand.Release)
	case OpTildeEqual:
		// "For a given release identifier V.N, the compatible release
		// clause is approximately equivalent to the pair of comparison
		// clauses: >= V.N, == V.*"
		if spec.Epoch != cand.Epoch {
			return false
		}
		if !prefixMatch(spec.Release[:len(spec.Release)-1], cand.Release) {
			return false
		}
		return cand.Compare(spec) >= 0
	case OpGreaterThan:
		return greaterThan(spec, cand)
	case OpGreaterThanEqual:
		return greaterThan(spec, cand) || cand.Compare(spec) >= 0
	case OpLessThan:
		return lessThan(spec, cand) &&
			!(compareRelease(spec.Release, cand.Release) == 0 && cand.AnyPrerelease())
	case OpLessThanEqual:
		return lessThan(spec, cand) || cand.Compare(spec) <= 0
	default:
		return false
	}
}

// MatchOptions adjusts specifier matching behavior.
type MatchOptions struct {
	// ExcludePrereleases drops prerelease and dev candidate versions unless
	// the specifier's own version is itself a prerelease. Off by default:
	// plain Contains admits prereleases that satisfy the operator.
	ExcludePrereleases bool
}

// ContainsWith evaluates Contains under the given options.
func (s Specifier) ContainsWith(v Version, opts MatchOptions) bool {
	if opts.ExcludePrereleases && v.AnyPrerelease() && !s.Version.AnyPrerelease() {
		return false
	}
	return s.Contains(v)
}

// lessThan implements the "<" exclusive ordered comparison: unless the
// clause itself names a prerelease, a prerelease of the spec's own release
// is not accepted (<3.1 does not match 3.1.dev0, but matches 3.0.dev0).
func lessThan(spec, cand Version) bool {
	if cand.Epoch < spec.Epoch {
		return true
	}
	if !spec.AnyPrerelease() && cand.IsPre() &&
		compareRelease(spec.Release, cand.Release) == 0 {
		return false
	}
	return cand.Compare(spec) < 0
}

// greaterThan implements the ">" exclusive ordered comparison: unless the
// clause itself names a post release, a post release of the spec's own
// release is not accepted (>3.1 does not match 3.1.post0, but matches
// 3.2.post0), and local versions of the spec's release never match.
func greaterThan(spec, cand Version) bool {
	if cand.Epoch > spec.Epoch {
		return true
	}
	if compareRelease(spec.Release, cand.Release) == 0 {
		if !spec.IsPost() && cand.IsPost() {
			return false
		}
		if cand.IsLocal() {
			return false
		}
	}
	return cand.Compare(spec) > 0
}
