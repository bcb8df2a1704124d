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

// Package server provides a reusable HTTP server with the middleware and
// operational endpoints shared by all pyver services.
//
// The server is application-agnostic: callers register their route handlers
// via options and the server wraps them in a standard middleware chain:
//
//	metrics -> API version negotiation -> request ID -> panic recovery ->
//	rate limiting -> request logging -> handler
//
// # Usage
//
//	s := server.New(
//		server.WithName("my-service"),
//		server.WithVersion("1.0.0"),
//		server.WithHandler(map[string]http.HandlerFunc{
//			"/v1/thing": handleThing,
//		}),
//	)
//	if err := s.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// Run blocks until SIGINT/SIGTERM or a fatal server error, then shuts
// down gracefully within the configured shutdown timeout.
//
// # System Endpoints
//
// These are registered automatically and bypass rate limiting:
//   - GET /health  - liveness probe
//   - GET /ready   - readiness probe (503 until the server is started)
//   - GET /metrics - Prometheus metrics
//
// The default route ("/") returns server identity and the registered routes.
//
// # Configuration
//
// Defaults come from the defaults package and can be overridden with
// options or environment variables (PORT, SHUTDOWN_TIMEOUT_SECONDS).
//
// # Errors
//
// API routes return the structured ErrorResponse JSON payload with a
// stable error code, request ID, and a retryable hint.
package server
