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
)

// compareResult is the output payload of the compare command.
type compareResult struct {
	A        string `json:"a" yaml:"a"`
	B        string `json:"b" yaml:"b"`
	Result   int    `json:"result" yaml:"result"`
	Relation string `json:"relation" yaml:"relation"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two versions",
		ArgsUsage:             "A B",
		Description: `Compare two versions under the total ordering: prints -1, 0, or 1
depending on whether A is less than, equal to, or greater than B.
Both versions are echoed back in canonical form.

Examples:
  pyver compare 1.0rc1 1.0
  pyver compare 1.0+local.1 1.0+local.2`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return fmt.Errorf("expected exactly two version arguments, got %d", len(args))
			}

			a, err := pyver.ParseVersion(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}
			b, err := pyver.ParseVersion(args[1])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[1], err)
			}

			result := a.Compare(b)
			relation := "=="
			switch {
			case result < 0:
				relation = "<"
			case result > 0:
				relation = ">"
			}

			return writeOutput(ctx, cmd, compareResult{
				A:        a.String(),
				B:        b.String(),
				Result:   result,
				Relation: relation,
			})
		},
	}
}
