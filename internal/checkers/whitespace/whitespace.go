// Package whitespace implements the trailing whitespace checker.
package whitespace

import (
	"strings"

	"github.com/wharflab/relint/internal/checker"
	"github.com/wharflab/relint/internal/message"
)

// Message codes emitted by the checker.
const (
	TrailingWhitespace  = message.ID("C0303")
	MissingFinalNewline = message.ID("C0304")
)

// Checker flags trailing whitespace and a missing final newline. It is
// restricted by the default allow-list and only reports when explicitly
// enabled.
type Checker struct{}

// New creates the checker.
func New() *Checker { return &Checker{} }

// Name implements checker.Checker.
func (c *Checker) Name() string { return "whitespace" }

// Messages implements checker.Checker.
func (c *Checker) Messages() []message.ID {
	return []message.ID{TrailingWhitespace, MissingFinalNewline}
}

// Check implements checker.Checker.
func (c *Checker) Check(in checker.Input, emit checker.EmitFunc) {
	for i, line := range in.Lines {
		if line != strings.TrimRight(line, " \t") {
			emit(TrailingWhitespace, i+1, 0, "Trailing whitespace")
		}
	}
	if len(in.Source) > 0 && in.Source[len(in.Source)-1] != '\n' {
		emit(MissingFinalNewline, len(in.Lines), 0, "Final newline missing")
	}
}
