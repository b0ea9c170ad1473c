// Package runner wires the registry, restriction filter, engine and diff
// pipeline together for one invocation.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/wharflab/relint/internal/checker"
	"github.com/wharflab/relint/internal/checkers/all"
	"github.com/wharflab/relint/internal/config"
	"github.com/wharflab/relint/internal/discovery"
	"github.com/wharflab/relint/internal/engine"
	"github.com/wharflab/relint/internal/message"
	"github.com/wharflab/relint/internal/report"
	"github.com/wharflab/relint/internal/reporter"
	"github.com/wharflab/relint/internal/version"
)

// Exit codes returned by Run.
const (
	ExitClean    = 0
	ExitFindings = 1
	ExitFatal    = 2
)

// ErrNoTargets is returned when no argument resolved to a check target.
// The command layer responds by showing help instead of evaluating.
var ErrNoTargets = errors.New("no check targets")

// BuiltinAllowed returns the fixed built-in allow-list: the message codes
// contributed by the built-in checkers that stay visible without any custom
// checker or configuration override.
func BuiltinAllowed() []message.ID {
	return []message.ID{
		engine.ReadFailure, // F0001
		"C0111",            // missing docstring
		"C0103",            // invalid name
		"C0301",            // line too long
		"W0311",            // bad indentation
		"W0312",            // tab indentation
	}
}

// RegisterCustomCheckers instantiates every spec, registers the checker,
// and returns the run's allowed-message set: the built-in allow-list
// unioned with each custom checker's declared messages.
func RegisterCustomCheckers(reg *checker.Registry, specs []checker.Spec) message.Set {
	allowed := message.NewSet(BuiltinAllowed()...)
	for _, s := range specs {
		c := s.New()
		reg.Register(c)
		allowed.AddAll(c.Messages()...)
	}
	return allowed
}

// Options configures a Runner beyond what the config file carries.
type Options struct {
	// Stdout is the report sink. Defaults to os.Stdout.
	Stdout io.Writer

	// Stderr receives fatal errors and the run summary. Defaults to
	// os.Stderr.
	Stderr io.Writer

	// Baseline is the report file to diff against. Empty disables diff
	// mode.
	Baseline string

	// Log defaults to a warn-level logger on Stderr.
	Log *logrus.Logger
}

// Runner executes one check invocation. The allowed-message set and the
// checker registry are built once in New and fixed for the run.
type Runner struct {
	cfg      *config.Config
	stdout   io.Writer
	stderr   io.Writer
	baseline string
	log      *logrus.Logger

	registry *checker.Registry
	allowed  message.Set
	reporter *reporter.Limited
	engine   *engine.Engine
}

// New builds a runner: registers the built-in and custom checkers,
// computes the allowed-message set (built-in allow-list, custom checker
// messages, configuration overrides), and restricts the registry so that
// no checker incapable of emitting an allowed code survives.
func New(cfg *config.Config, opts Options) *Runner {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Log == nil {
		opts.Log = logrus.New()
		opts.Log.SetOutput(opts.Stderr)
		opts.Log.SetLevel(logrus.WarnLevel)
	}

	reg := checker.NewRegistry()
	for _, c := range all.Builtin(cfg) {
		reg.Register(c)
	}
	allowed := RegisterCustomCheckers(reg, all.CustomSpecs(cfg))

	for _, raw := range cfg.Checkers.AllowMessages {
		id, err := message.Parse(raw)
		if err != nil {
			opts.Log.Warnf("ignoring allow-messages entry: %v", err)
			continue
		}
		allowed.Add(id)
	}
	for _, raw := range cfg.Checkers.DenyMessages {
		id, err := message.Parse(raw)
		if err != nil {
			opts.Log.Warnf("ignoring deny-messages entry: %v", err)
			continue
		}
		allowed.Remove(id)
	}

	checker.Restrict(reg, allowed)

	rep := reporter.NewLimited(opts.Stdout, allowed)
	return &Runner{
		cfg:      cfg,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		baseline: opts.Baseline,
		log:      opts.Log,
		registry: reg,
		allowed:  allowed,
		reporter: rep,
		engine:   engine.New(reg, rep, cfg, opts.Log),
	}
}

// Registry returns the restricted checker registry.
func (r *Runner) Registry() *checker.Registry {
	return r.registry
}

// Allowed returns the run's allowed-message set.
func (r *Runner) Allowed() message.Set {
	return r.allowed
}

// Run resolves args into check targets, evaluates them, and writes the
// report (or, in diff mode, only the newly introduced warnings) to the
// output sink. It returns the process exit code.
//
// The baseline file's existence is verified before any evaluation so a
// missing baseline fails fast instead of wasting a full pass.
func (r *Runner) Run(args []string) (int, error) {
	targets, missing := discovery.Resolve(args, r.discoveryOptions())
	for _, m := range missing {
		r.log.Warnf("skipping argument: %v", m)
	}
	if len(targets) == 0 {
		return ExitClean, ErrNoTargets
	}

	var baselineText string
	if r.baseline != "" {
		data, err := os.ReadFile(r.baseline)
		if err != nil {
			fmt.Fprintf(r.stderr, "Error: Result file '%s' does not exist.\n", r.baseline)
			return ExitFatal, nil
		}
		baselineText = string(data)
	}

	// Diff mode and SARIF output both consume the structured report, so
	// the raw stream is captured in memory instead of going to the sink.
	capture := r.baseline != "" || r.cfg.Output.Format == config.FormatSARIF
	var buf bytes.Buffer
	if capture {
		r.engine.SetOutput(&buf)
	}

	stats, err := r.engine.Evaluate(targets)
	if err != nil {
		fmt.Fprintf(r.stderr, "Error: %v\n", err)
		return ExitFatal, err
	}

	warnings := stats.Warnings
	modules := r.reporter.Modules()
	if capture {
		current := report.Parse(buf.String())
		result := current
		if r.baseline != "" {
			result = report.Diff(report.Parse(baselineText), current)
			warnings = result.TotalWarnings()
		}
		modules = len(result.Modules())
		if err := r.writeResult(result); err != nil {
			fmt.Fprintf(r.stderr, "Error: %v\n", err)
			return ExitFatal, err
		}
	}

	if r.cfg.Output.Summary {
		reporter.WriteSummary(r.stderr, reporter.Summary{
			FilesChecked: stats.FilesChecked,
			Modules:      modules,
			Warnings:     warnings,
			DiffMode:     r.baseline != "",
		})
	}

	if warnings > 0 {
		return ExitFindings, nil
	}
	return ExitClean, nil
}

// writeResult serializes a structured report to the real output sink in
// the configured format.
func (r *Runner) writeResult(m report.ModuleReport) error {
	if r.cfg.Output.Format == config.FormatSARIF {
		return report.WriteSARIF(r.stdout, m, version.RawVersion())
	}
	_, err := io.WriteString(r.stdout, report.Format(m))
	return err
}

func (r *Runner) discoveryOptions() discovery.Options {
	return discovery.Options{
		Patterns: r.cfg.Discovery.Patterns,
		Exclude:  r.cfg.Discovery.Exclude,
	}
}
