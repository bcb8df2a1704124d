/*
Copyright © 2025 the pyver authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	pyver "github.com/pyver/pyver/pkg/version"
	"github.com/pyver/pyver/pkg/versions"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Check a version against specifiers",
		ArgsUsage:             "VERSION",
		Description: `Check whether a version satisfies a comma-separated list of version
specifiers. Exits with status 1 when the version does not satisfy the
specifiers, making the command usable in scripts and CI pipelines.

Prereleases are eligible matches by default; pass --exclude-prereleases
to reject them unless the specifiers mention a prerelease explicitly.

Examples:
  pyver check 1.19.2 --require ">=1.19, <2.0"
  pyver check 1.20a1 --require ">=1.19" --exclude-prereleases`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "require",
				Aliases:  []string{"s"},
				Required: true,
				Usage:    `Comma-separated version specifiers (e.g. ">=1.19, <2.0")`,
			},
			&cli.BoolFlag{
				Name:  "exclude-prereleases",
				Usage: "Reject prerelease versions unless the specifiers mention one",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one version argument, got %d", len(args))
			}

			v, err := pyver.ParseVersion(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}

			specs, err := pyver.ParseSpecifiers(cmd.String("require"))
			if err != nil {
				return fmt.Errorf("invalid specifiers %q: %w", cmd.String("require"), err)
			}

			excludePre := cmd.Bool("exclude-prereleases")
			compatible := specs.ContainsWith(v, pyver.MatchOptions{
				ExcludePrereleases: excludePre,
			})

			result := versions.CheckResponse{
				Version:            v.String(),
				Require:            specs.String(),
				Compatible:         compatible,
				ExcludePrereleases: excludePre,
				CheckedAt:          time.Now().UTC(),
			}

			if err := writeOutput(ctx, cmd, result); err != nil {
				return err
			}

			if !compatible {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}
