package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pyver/pyver/pkg/logging"
	"github.com/pyver/pyver/pkg/server"
	"github.com/pyver/pyver/pkg/versions"
)

const (
	name           = "pyver-api-server"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/pyver/pyver/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	r := routes(versions.NewService())

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// routes maps URL patterns to the version service handlers.
func routes(svc *versions.Service) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/version/parse": svc.HandleParse,
		"/v1/version/check": svc.HandleCheck,
		"/v1/version/sort":  svc.HandleSort,
	}
}
