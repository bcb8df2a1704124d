/*
Copyright © 2025 the pyver authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/pyver/pyver/pkg/serializer"
)

// writeOutput serializes v to the destination and format selected by the
// shared --output and --format flags.
func writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := serializer.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	w, err := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	if err != nil {
		return fmt.Errorf("failed to create output writer: %w", err)
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close output writer", "error", err)
		}
	}()

	return w.Serialize(ctx, v)
}
