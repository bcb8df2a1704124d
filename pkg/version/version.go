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
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Error types for version and specifier parsing failures
var (
	ErrInvalidVersion   = errors.New("version does not match PEP 440 rules")
	ErrInvalidSpecifier = errors.New("version specifier does not match PEP 440 rules")
	ErrStarInVersion    = errors.New("a star (*) must not be used in a fixed version")
	ErrStarPlacement    = errors.New("a star (*) in the version must not be followed by a non-star component")
	ErrStarOperator     = errors.New("operator must not be used with a star version")
	ErrLocalOperator    = errors.New("operator must not be combined with a local version label")
	ErrTildeRelease     = errors.New("the ~= operator requires at least two release version parts")
)

// PreKind identifies the prerelease phase of a version: alpha, beta, or
// release candidate. The value is the canonical PEP 440 spelling.
type PreKind string

const (
	PreKindAlpha PreKind = "a"
	PreKindBeta  PreKind = "b"
	PreKindRC    PreKind = "rc"
)

// rank positions the prerelease phases between dev releases and final
// releases: dev < a < b < rc < final < post.
func (k PreKind) rank() int {
	switch k {
	case PreKindAlpha:
		return 1
	case PreKindBeta:
		return 2
	default:
		return 3
	}
}

func (k PreKind) String() string {
	return string(k)
}

// parsePreKind maps the permissive tag spellings onto the canonical kinds.
// The input must already be lower-cased.
func parsePreKind(s string) (PreKind, bool) {
	switch s {
	case "a", "alpha":
		return PreKindAlpha, true
	case "b", "beta":
		return PreKindBeta, true
	case "c", "rc", "pre", "preview":
		return PreKindRC, true
	default:
		return "", false
	}
}

// PreRelease is the optional alpha/beta/rc marker of a version, with its
// number. A tag without digits carries the implicit number 0.
type PreRelease struct {
	Kind   PreKind
	Number int
}

func (p PreRelease) String() string {
	return fmt.Sprintf("%s%d", p.Kind, p.Number)
}

// LocalSegment is one dot-separated part of a local version label.
// Segments consisting entirely of ASCII digits compare numerically and
// rank above alphanumeric segments; alphanumeric segments compare
// lexically, lower-cased.
type LocalSegment struct {
	Str     string
	Number  int
	Numeric bool
}

func parseLocalSegment(s string) LocalSegment {
	if n, err := strconv.Atoi(s); err == nil {
		return LocalSegment{Number: n, Numeric: true}
	}
	return LocalSegment{Str: strings.ToLower(s)}
}

func (s LocalSegment) String() string {
	if s.Numeric {
		return strconv.Itoa(s.Number)
	}
	return s.Str
}

func (s LocalSegment) compare(other LocalSegment) int {
	switch {
	case s.Numeric && other.Numeric:
		return intCompare(s.Number, other.Number)
	case s.Numeric:
		// numeric segments rank above alphanumeric ones
		return 1
	case other.Numeric:
		return -1
	default:
		return strings.Compare(s.Str, other.Str)
	}
}

// Version is a PEP 440 version number such as "1.19", "1.0a1" or
// "4!5.6.7-a8.post9.dev0". Construct with ParseVersion; values are
// immutable by convention and compared by value with Compare and Equal.
type Version struct {
	// Epoch is the leading "N!" ordering band, normally 0.
	Epoch int
	// Release is the dot-separated numeric core, e.g. [1, 19] for "1.19".
	Release []int
	// Pre is the optional alpha/beta/rc marker. Its presence influences
	// specifier matching when prerelease exclusion is requested.
	Pre *PreRelease
	// Post is the optional post-release number; higher post releases rank
	// above the bare release.
	Post *int
	// Dev is the optional developmental release number, ranked below any
	// prerelease of the same release.
	Dev *int
	// Local holds the "+label" build-metadata segments, if any.
	Local []LocalSegment
}

// A permissive version grammar, after PEP 440 Appendix B. Stars are
// admitted in the release so specifier parsing can hand out precise
// errors; ParseVersion rejects them.
const versionPatternInner = `(?:v?)` +
	`(?:(?P<epoch>[0-9]+)!)?` +
	`(?P<release>[0-9*]+(?:\.[0-9*]+)*)` +
	`(?:[-_\.]?(?P<preName>a|b|c|rc|alpha|beta|pre|preview)[-_\.]?(?P<preNumber>[0-9]+)?)?` +
	`(?P<postField>(?:-(?P<postOld>[0-9]+))|(?:[-_\.]?(?:post|rev|r)[-_\.]?(?P<postNew>[0-9]+)?))?` +
	`(?P<devField>[-_\.]?dev[-_\.]?(?P<devNumber>[0-9]+)?)?` +
	`(?:\+(?P<local>[a-z0-9]+(?:[-_\.][a-z0-9]+)*))?`

var (
	versionRe   = regexp.MustCompile(`(?i)^\s*` + versionPatternInner + `\s*$`)
	specifierRe = regexp.MustCompile(`(?i)^\s*(?P<operator>===|~=|==|!=|<=|>=|<|>)\s*` + versionPatternInner + `\s*$`)
)

// group returns the named submatch, or "" when the group did not participate.
func group(re *regexp.Regexp, match []string, name string) string {
	i := re.SubexpIndex(name)
	if i < 0 || i >= len(match) {
		return ""
	}
	return match[i]
}

// numberGroup parses the named submatch as a non-negative integer,
// returning ok=false when the group is absent.
func numberGroup(re *regexp.Regexp, match []string, name string) (int, bool, error) {
	s := group(re, match, name)
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q is not a number", ErrInvalidVersion, s)
	}
	return n, true, nil
}

// parseModifiers extracts the epoch, pre, post, dev and local fields shared
// between version and specifier parsing.
func parseModifiers(re *regexp.Regexp, match []string) (epoch int, pre *PreRelease, post, dev *int, local []LocalSegment, err error) {
	epoch, _, err = numberGroup(re, match, "epoch")
	if err != nil {
		return 0, nil, nil, nil, nil, err
	}

	if name := group(re, match, "preName"); name != "" {
		kind, ok := parsePreKind(strings.ToLower(name))
		if !ok {
			// unreachable given the grammar
			return 0, nil, nil, nil, nil, fmt.Errorf("%w: unknown prerelease tag %q", ErrInvalidVersion, name)
		}
		// implicit prerelease number is 0
		n, _, nerr := numberGroup(re, match, "preNumber")
		if nerr != nil {
			return 0, nil, nil, nil, nil, nerr
		}
		pre = &PreRelease{Kind: kind, Number: n}
	}

	if group(re, match, "postField") != "" {
		n, ok, nerr := numberGroup(re, match, "postNew")
		if nerr != nil {
			return 0, nil, nil, nil, nil, nerr
		}
		if !ok {
			n, _, nerr = numberGroup(re, match, "postOld")
			if nerr != nil {
				return 0, nil, nil, nil, nil, nerr
			}
		}
		post = &n
	}

	if group(re, match, "devField") != "" {
		n, _, nerr := numberGroup(re, match, "devNumber")
		if nerr != nil {
			return 0, nil, nil, nil, nil, nerr
		}
		dev = &n
	}

	if l := group(re, match, "local"); l != "" {
		for _, segment := range strings.FieldsFunc(l, func(r rune) bool {
			return r == '-' || r == '_' || r == '.'
		}) {
			local = append(local, parseLocalSegment(segment))
		}
	}

	return epoch, pre, post, dev, local, nil
}

// ParseVersion parses a version string such as "1.19", "1.0a1", "1.0+abc.5"
// or "1!2012.2" into a Version. It accepts the permissive spellings found in
// the wild: a leading "v", mixed case, and ".", "-", "_" or no separator
// between segments. Surrounding whitespace is ignored.
// Returns a wrapped ErrInvalidVersion when the input does not conform.
func ParseVersion(s string) (Version, error) {
	match := versionRe.FindStringSubmatch(s)
	if match == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	epoch, pre, post, dev, local, err := parseModifiers(versionRe, match)
	if err != nil {
		return Version{}, err
	}

	var release []int
	for _, segment := range strings.Split(group(versionRe, match, "release"), ".") {
		if segment == "*" {
			return Version{}, fmt.Errorf("%w: %q", ErrStarInVersion, s)
		}
		n, err := strconv.Atoi(segment)
		if err != nil {
			return Version{}, fmt.Errorf("%w: release part %q is not a number", ErrInvalidVersion, segment)
		}
		release = append(release, n)
	}

	return Version{
		Epoch:   epoch,
		Release: release,
		Pre:     pre,
		Post:    post,
		Dev:     dev,
		Local:   local,
	}, nil
}

// MustParseVersion parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use ParseVersion and handle errors explicitly.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// String renders the canonical minimal PEP 440 form: the epoch is omitted
// when zero, prerelease tags are lower-cased "a"/"b"/"rc" with no
// separator, post and dev releases are dot-prefixed, and local segments
// are dot-joined.
func (v Version) String() string {
	var b strings.Builder
	if v.Epoch != 0 {
		fmt.Fprintf(&b, "%d!", v.Epoch)
	}
	for i, r := range v.Release {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(r))
	}
	if v.Pre != nil {
		b.WriteString(v.Pre.String())
	}
	if v.Post != nil {
		fmt.Fprintf(&b, ".post%d", *v.Post)
	}
	if v.Dev != nil {
		fmt.Fprintf(&b, ".dev%d", *v.Dev)
	}
	if len(v.Local) > 0 {
		b.WriteByte('+')
		for i, s := range v.Local {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s.String())
		}
	}
	return b.String()
}

// LocalString returns the dot-joined local version label, without the
// leading "+". Returns the empty string when no local label is present.
func (v Version) LocalString() string {
	var b strings.Builder
	for i, s := range v.Local {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// IsPre returns true if this is an alpha, beta or rc version.
func (v Version) IsPre() bool {
	return v.Pre != nil
}

// IsDev returns true if this is a developmental release.
func (v Version) IsDev() bool {
	return v.Dev != nil
}

// IsPost returns true if this is a post release.
func (v Version) IsPost() bool {
	return v.Post != nil
}

// IsLocal returns true if the version carries a local version label.
func (v Version) IsLocal() bool {
	return len(v.Local) > 0
}

// AnyPrerelease returns true if the version carries a prerelease tag or a
// dev-release marker, i.e. anything that ranks below the final release.
func (v Version) AnyPrerelease() bool {
	return v.IsPre() || v.IsDev()
}

// WithoutLocal returns a copy of the version with the local label removed.
// Specifier matching ignores local labels unless the specifier itself
// carries one.
func (v Version) WithoutLocal() Version {
	v.Local = nil
	return v
}
