/*
Copyright © 2025 the pyver authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	pyver "github.com/pyver/pyver/pkg/version"
	"github.com/pyver/pyver/pkg/versions"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse version strings and print their normalized form",
		ArgsUsage:             "VERSION [VERSION...]",
		Description: `Parse one or more version strings, validating them against the permissive
input grammar and printing each in canonical normalized form along with
its components (epoch, release, prerelease, post, dev, local).

Examples:
  pyver parse 1.0.0rc1
  pyver parse V1.0.0-alpha.2 2!1.19 --format yaml`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("at least one version argument is required")
			}

			parsed := make([]versions.ParsedVersion, 0, len(args))
			for _, raw := range args {
				v, err := pyver.ParseVersion(raw)
				if err != nil {
					return fmt.Errorf("invalid version %q: %w", raw, err)
				}
				parsed = append(parsed, versions.NewParsedVersion(raw, v))
			}

			if len(parsed) == 1 {
				return writeOutput(ctx, cmd, parsed[0])
			}
			return writeOutput(ctx, cmd, parsed)
		},
	}
}
