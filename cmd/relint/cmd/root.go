package cmd

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wharflab/relint/internal/version"
)

// NewApp creates the CLI application
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    "relint",
		Usage:   "A restrictive source checker with baseline-diff support",
		Version: version.Version(),
		Description: `relint runs a curated set of source checkers and reports findings
grouped by module.

With --diff it compares the current run against a saved baseline report
and shows only newly introduced warnings.

Examples:
  relint check pkg/
  relint check pkg.widgets
  relint check --diff baseline.txt pkg/`,
		Commands: []*cli.Command{
			checkCommand(),
			checkersCommand(),
			initCommand(),
			versionCommand(),
		},
	}
}

// Execute runs the CLI application
func Execute() error {
	return NewApp().Run(context.Background(), os.Args)
}
