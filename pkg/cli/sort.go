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

	"github.com/pyver/pyver/pkg/serializer"
	pyver "github.com/pyver/pyver/pkg/version"
	"github.com/pyver/pyver/pkg/versions"
)

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Sort versions into the total order",
		ArgsUsage:             "[VERSION...]",
		Description: `Sort version strings ascending under the total ordering and print them
in canonical form. Versions are taken from the arguments, or from a
JSON/YAML file containing a list of strings when --input is given.

Examples:
  pyver sort 2.0 1.0rc1 1.0 1.0.post1
  pyver sort --input versions.yaml --reverse`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"f"},
				Usage:   "Path or HTTP/HTTPS URL of a JSON/YAML file with a list of versions",
			},
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "Sort descending instead of ascending",
			},
			&cli.BoolFlag{
				Name:  "skip-invalid",
				Usage: "Drop unparseable entries instead of failing",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raws := cmd.Args().Slice()

			if inputPath := cmd.String("input"); inputPath != "" {
				if len(raws) > 0 {
					return fmt.Errorf("cannot combine --input with version arguments")
				}
				fromFile, err := serializer.FromFile[[]string](inputPath)
				if err != nil {
					return fmt.Errorf("failed to load versions from %q: %w", inputPath, err)
				}
				raws = *fromFile
			}

			if len(raws) == 0 {
				return fmt.Errorf("no versions provided")
			}

			parsed := make([]pyver.Version, 0, len(raws))
			var skipped []string
			for _, raw := range raws {
				v, err := pyver.ParseVersion(raw)
				if err != nil {
					if cmd.Bool("skip-invalid") {
						skipped = append(skipped, raw)
						continue
					}
					return fmt.Errorf("invalid version %q: %w", raw, err)
				}
				parsed = append(parsed, v)
			}

			pyver.Sort(parsed)

			out := make([]string, len(parsed))
			for i, v := range parsed {
				if cmd.Bool("reverse") {
					out[len(parsed)-1-i] = v.String()
				} else {
					out[i] = v.String()
				}
			}

			return writeOutput(ctx, cmd, versions.SortResponse{
				Versions: out,
				Skipped:  skipped,
				Count:    len(out),
				SortedAt: time.Now().UTC(),
			})
		},
	}
}
