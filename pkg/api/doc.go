// Package api provides the HTTP API layer for the pyver version service.
//
// This package acts as a thin wrapper around the reusable pkg/server
// package, configuring it with the version-operation routes from
// pkg/versions. Use the CLI for local one-off parsing and checking;
// the API server exists for services that want the same semantics over
// HTTP.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/pyver/pyver/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET  /v1/version/parse - parse and normalize a version string
//   - GET  /v1/version/check - check a version against specifiers
//   - POST /v1/version/sort  - sort a list of versions
//
// System endpoints (no rate limiting):
//   - GET /health  - health check (liveness probe)
//   - GET /ready   - readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters
//
// GET /v1/version/parse:
//   - v: version string (required)
//
// GET /v1/version/check:
//   - v: version string (required)
//   - require: comma-separated specifiers, e.g. ">=1.19, <2.0" (required)
//   - excludePrereleases: "true" to reject prereleases unless the
//     specifiers mention one explicitly
package api
