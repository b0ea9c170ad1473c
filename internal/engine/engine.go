// Package engine runs the active checkers over resolved check targets and
// streams findings to the output sink in the canonical report format.
package engine

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/wharflab/relint/internal/checker"
	"github.com/wharflab/relint/internal/config"
	"github.com/wharflab/relint/internal/discovery"
	"github.com/wharflab/relint/internal/message"
	"github.com/wharflab/relint/internal/reporter"
)

// ReadFailure is emitted by the engine itself when a target file cannot be
// read. It is part of the built-in allow-list, so it is always visible.
const ReadFailure = message.ID("F0001")

// Stats summarizes one evaluation pass.
type Stats struct {
	// FilesChecked is the number of files evaluated.
	FilesChecked int

	// Warnings is the number of findings written to the sink.
	Warnings int
}

// Engine evaluates files with the registered checkers. Evaluation is
// synchronous: each file runs to completion before the next begins, and
// checkers run in registration order.
type Engine struct {
	registry *checker.Registry
	reporter *reporter.Limited
	cfg      *config.Config
	log      *logrus.Logger
	captured bool
}

// New creates an engine over the given registry and reporter.
func New(registry *checker.Registry, rep *reporter.Limited, cfg *config.Config, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return &Engine{
		registry: registry,
		reporter: rep,
		cfg:      cfg,
		log:      log,
	}
}

// Registry returns the engine's checker registry.
func (e *Engine) Registry() *checker.Registry {
	return e.registry
}

// SetOutput redirects the engine's report stream. Used by the orchestrator
// to capture raw output in memory for baseline comparison. Captured output
// must stay parseable, so report sections are suppressed after redirection.
func (e *Engine) SetOutput(w io.Writer) {
	e.reporter.SetOutput(w)
	e.captured = true
}

// Evaluate expands the targets into concrete files and checks each one.
// Findings stream to the reporter as they are produced.
func (e *Engine) Evaluate(targets []string) (Stats, error) {
	files, err := discovery.Expand(targets, discovery.Options{
		Patterns: e.cfg.Discovery.Patterns,
		Exclude:  e.cfg.Discovery.Exclude,
	})
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, file := range files {
		e.checkFile(file)
		stats.FilesChecked++
	}

	if e.cfg.Checkers.Reports && !e.captured {
		e.writeReportSections()
	}

	stats.Warnings = e.reporter.Emitted()
	return stats, nil
}

// checkFile runs every registered checker over one file.
func (e *Engine) checkFile(path string) {
	module := discovery.ModuleName(path)
	e.log.Debugf("checking %s (module %s)", path, module)

	content, err := os.ReadFile(path)
	if err != nil {
		e.reporter.Emit(module, ReadFailure, 1, 0, "Unable to read file: "+err.Error())
		return
	}

	in := checker.Input{
		Path:   path,
		Module: module,
		Source: content,
		Lines:  strings.Split(string(content), "\n"),
		IsTest: discovery.IsTestModule(module),
	}

	emit := func(id message.ID, line, col int, text string) {
		e.reporter.Emit(module, id, line, col, text)
	}
	for _, c := range e.registry.Checkers() {
		c.Check(in, emit)
	}
}

// writeReportSections appends each registered checker's report section to
// the current sink.
func (e *Engine) writeReportSections() {
	for _, sp := range e.registry.ReportProviders() {
		if err := sp.ReportSection(e.reporter.Output()); err != nil {
			e.log.Warnf("report section failed: %v", err)
		}
	}
}
