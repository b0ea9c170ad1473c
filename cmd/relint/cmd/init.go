package cmd

import (
	stdcontext "context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/wharflab/relint/internal/config"
	"github.com/wharflab/relint/internal/runner"
)

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a default .relint.toml in the current directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing config file",
			},
		},
		Action: runInit,
	}
}

func runInit(_ stdcontext.Context, cmd *cli.Command) error {
	path := config.ConfigFileNames[0]

	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", path)
		return cli.Exit("", runner.ExitFatal)
	}

	data, err := toml.Marshal(config.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.Exit("", runner.ExitFatal)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.Exit("", runner.ExitFatal)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
