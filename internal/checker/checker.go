// Package checker defines the checker contract and the registry that owns
// active checkers for a run.
package checker

import (
	"io"

	"github.com/wharflab/relint/internal/message"
)

// Input carries everything a checker needs to examine one source file.
//
// Input is read-only. Checkers must not mutate Source or Lines; the same
// backing arrays are shared between all checkers for a file.
type Input struct {
	// Path is the path of the file being checked.
	Path string

	// Module is the dotted module name derived from Path.
	Module string

	// Source is the raw file content.
	Source []byte

	// Lines is Source split on newlines, without terminators.
	Lines []string

	// IsTest reports whether the file is a test module
	// (last module segment ends in "_test").
	IsTest bool
}

// EmitFunc receives one finding from a checker. Line and column are 1-based
// and 0-based respectively, matching the report text format.
type EmitFunc func(id message.ID, line, col int, text string)

// Checker is a named rule-set capable of emitting a fixed set of message IDs.
type Checker interface {
	// Name identifies the checker. Multiple checkers may share a name;
	// the registry groups them.
	Name() string

	// Messages returns every message ID this checker may emit.
	// The set is fixed for the checker's lifetime.
	Messages() []message.ID

	// Check examines one file and reports findings through emit.
	Check(in Input, emit EmitFunc)
}

// OptionsProvider is an optional interface for checkers that contribute
// configuration options to the run.
type OptionsProvider interface {
	// Options returns the option names the checker understands.
	Options() []Option
}

// Option describes one configuration option contributed by a checker.
type Option struct {
	Name    string
	Usage   string
	Default string
}

// StatsProvider is an optional interface for checkers that contribute a
// report section summarizing the run.
type StatsProvider interface {
	// ReportSection writes a post-run summary section. It is only invoked
	// while the checker is registered.
	ReportSection(w io.Writer) error
}

// Spec names an instantiable checker. Custom checkers are installed from
// specs at orchestrator start; their message sets are unioned into the
// run's allow-list.
type Spec struct {
	// Name is the checker name the spec produces.
	Name string

	// New instantiates the checker.
	New func() Checker
}
