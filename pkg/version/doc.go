// Package version implements PEP 440 version parsing, ordering, and
// specifier matching.
//
// # Overview
//
// This package is the core of pyver: a pure, deterministic model of the
// Python packaging version scheme (peps.python.org/pep-0440). It parses
// version strings and version specifiers, renders their canonical forms,
// orders versions, and evaluates specifier containment. There is no I/O and
// no shared mutable state; all values are immutable after construction and
// safe for concurrent use.
//
// # Versions
//
// Parse a version string:
//
//	v, err := version.ParseVersion("1.19-alpha.1")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.19a1
//
// Parsing is permissive: it accepts the spellings found in the wild
// (leading "v", mixed case, ".", "-", "_" or missing separators, implicit
// pre/post/dev numbers) and String always renders the canonical minimal
// form. Re-parsing a canonical form yields an equal version.
//
// Order versions:
//
//	a := version.MustParseVersion("1.0rc1")
//	b := version.MustParseVersion("1.0")
//	a.Compare(b) // -1: release candidates order before the final release
//
// The total order is: epoch, then the zero-padded release segments, then
// the suffixes (.devN < aN < bN < rcN < final < .postN), then the local
// version label.
//
// # Specifiers
//
// Parse and evaluate a clause:
//
//	spec, err := version.ParseSpecifier(">=1.19-alpha.1")
//	spec.String()                                    // ">= 1.19a1"
//	spec.Contains(version.MustParseVersion("1.21"))  // true
//
// Or a conjunctive set:
//
//	specs, err := version.ParseSpecifiers(">=1.16, <2.0")
//	specs.Contains(version.MustParseVersion("1.19")) // true
//
// Prerelease versions are included by default when they satisfy the
// operator. Exclusion in the pip style is opt-in:
//
//	specs.ContainsWith(v, version.MatchOptions{ExcludePrereleases: true})
//
// # Error Handling
//
// Parsing either fully succeeds or fails with a wrapped sentinel error:
//
//   - ErrInvalidVersion: input does not match the permissive grammar
//   - ErrInvalidSpecifier: unknown operator or malformed clause
//   - ErrStarInVersion, ErrStarPlacement, ErrStarOperator: misplaced
//     prefix-matching stars
//   - ErrLocalOperator: local label with an ordered operator
//   - ErrTildeRelease: "~=" with fewer than two release parts
//
// For constant initialization, use MustParseVersion, MustParseSpecifier or
// MustParseSpecifiers, which panic on error.
package version
