package cmd

import (
	stdcontext "context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/wharflab/relint/internal/config"
	"github.com/wharflab/relint/internal/runner"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check files and modules for warnings",
		ArgsUsage: "[PATH|MODULE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default: auto-discover)",
			},
			&cli.StringFlag{
				Name:  "diff",
				Usage: "Baseline report file; only newly introduced warnings are shown",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, sarif",
				Sources: cli.EnvVars("RELINT_OUTPUT_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output path: stdout, stderr, or file path",
				Sources: cli.EnvVars("RELINT_OUTPUT_PATH"),
			},
			&cli.StringSliceFlag{
				Name:    "exclude",
				Usage:   "Glob pattern to exclude files (can be repeated)",
				Sources: cli.EnvVars("RELINT_DISCOVERY_EXCLUDE"),
			},
			&cli.StringSliceFlag{
				Name:    "disable",
				Usage:   "Disable a checker by name (can be repeated)",
				Sources: cli.EnvVars("RELINT_CHECKERS_DISABLE"),
			},
			&cli.BoolFlag{
				Name:    "reports",
				Usage:   "Append per-checker report sections to the output",
				Sources: cli.EnvVars("RELINT_CHECKERS_REPORTS"),
			},
			&cli.BoolFlag{
				Name:  "no-summary",
				Usage: "Suppress the stderr run summary",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Action: runCheck,
	}
}

// runCheck is the action handler for the check command.
func runCheck(_ stdcontext.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.Exit("", runner.ExitFatal)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if cmd.Bool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	sink, closeSink, err := openOutput(cfg.Output.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.Exit("", runner.ExitFatal)
	}
	defer func() {
		if err := closeSink(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output: %v\n", err)
		}
	}()

	r := runner.New(cfg, runner.Options{
		Stdout:   sink,
		Stderr:   os.Stderr,
		Baseline: cmd.String("diff"),
		Log:      log,
	})

	code, err := r.Run(cmd.Args().Slice())
	if errors.Is(err, runner.ErrNoTargets) {
		return cli.ShowSubcommandHelp(cmd)
	}
	if code != runner.ExitClean {
		return cli.Exit("", code)
	}
	return nil
}

// loadConfig loads configuration and applies CLI flag overrides.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configPath := cmd.String("config"); configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		target := "."
		if cmd.Args().Len() > 0 {
			target = cmd.Args().First()
		}
		cfg, err = config.Load(target)
	}
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("format") {
		cfg.Output.Format = cmd.String("format")
	}
	if cmd.IsSet("output") {
		cfg.Output.Path = cmd.String("output")
	}
	if cmd.IsSet("exclude") {
		cfg.Discovery.Exclude = append(cfg.Discovery.Exclude, cmd.StringSlice("exclude")...)
	}
	if cmd.IsSet("disable") {
		cfg.Checkers.Disable = append(cfg.Checkers.Disable, cmd.StringSlice("disable")...)
	}
	if cmd.IsSet("reports") {
		cfg.Checkers.Reports = cmd.Bool("reports")
	}
	if cmd.IsSet("no-summary") && cmd.Bool("no-summary") {
		cfg.Output.Summary = false
	}

	switch cfg.Output.Format {
	case config.FormatText, config.FormatSARIF:
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or sarif)", cfg.Output.Format)
	}

	return cfg, nil
}

// openOutput resolves the configured output path to a writer.
func openOutput(path string) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch path {
	case "", "stdout":
		return os.Stdout, noop, nil
	case "stderr":
		return os.Stderr, noop, nil
	default:
		f, err := os.Create(path)
		if err != nil {
			return nil, noop, err
		}
		return f, f.Close, nil
	}
}
