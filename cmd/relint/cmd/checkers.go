package cmd

import (
	stdcontext "context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wharflab/relint/internal/checker"
	"github.com/wharflab/relint/internal/config"
	"github.com/wharflab/relint/internal/runner"
)

func checkersCommand() *cli.Command {
	return &cli.Command{
		Name:  "checkers",
		Usage: "List the checkers active under the current configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default: auto-discover)",
			},
		},
		Action: runCheckers,
	}
}

// runCheckers prints the post-restriction checker registry: only checkers
// that can emit at least one allowed message survive configuration.
func runCheckers(_ stdcontext.Context, cmd *cli.Command) error {
	var cfg *config.Config
	var err error
	if configPath := cmd.String("config"); configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.Exit("", runner.ExitFatal)
	}

	r := runner.New(cfg, runner.Options{})
	reg := r.Registry()

	for _, name := range reg.Names() {
		for _, c := range reg.ByName(name) {
			fmt.Printf("%-12s %s\n", name, messageList(c))
			if op, ok := c.(checker.OptionsProvider); ok {
				for _, o := range op.Options() {
					fmt.Printf("  --%s (default %s): %s\n", o.Name, o.Default, o.Usage)
				}
			}
		}
	}
	fmt.Printf("\nallowed messages: %s\n", r.Allowed())
	return nil
}

func messageList(c checker.Checker) string {
	out := ""
	for i, id := range c.Messages() {
		if i > 0 {
			out += ","
		}
		out += string(id)
	}
	return out
}
