// Package cli implements the command-line interface for the pyver tool.
//
// # Overview
//
// The pyver CLI works with Python package version strings: it parses and
// normalizes them, compares them under the total ordering, sorts lists of
// them, and checks them against version specifiers. It is intended for
// build tooling and CI pipelines that need to reason about Python package
// versions without a Python runtime.
//
// # Commands
//
//   - parse   - parse version strings and print their normalized form
//   - compare - compare two versions
//   - sort    - sort versions into the total order
//   - check   - check a version against specifiers (exit 1 on mismatch)
//
// All commands accept --format (json, yaml, table) and --output to write
// results to a file instead of stdout.
package cli
