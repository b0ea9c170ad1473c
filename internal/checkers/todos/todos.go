// Package todos implements the fixme comment checker.
package todos

import (
	"fmt"
	"strings"

	"github.com/wharflab/relint/internal/checker"
	"github.com/wharflab/relint/internal/message"
)

// Fixme is the message code emitted by the checker.
const Fixme = message.ID("W0511")

// markers are the comment markers flagged by the checker.
var markers = []string{"TODO", "FIXME", "XXX"}

// Checker flags TODO-style markers in comments. It is restricted by the
// default allow-list and only reports when explicitly enabled.
type Checker struct{}

// New creates the checker.
func New() *Checker { return &Checker{} }

// Name implements checker.Checker.
func (c *Checker) Name() string { return "todos" }

// Messages implements checker.Checker.
func (c *Checker) Messages() []message.ID {
	return []message.ID{Fixme}
}

// Check implements checker.Checker.
func (c *Checker) Check(in checker.Input, emit checker.EmitFunc) {
	for i, line := range in.Lines {
		text, ok := checker.CommentText(line)
		if !ok {
			continue
		}
		for _, marker := range markers {
			if strings.Contains(text, marker) {
				emit(Fixme, i+1, 0, fmt.Sprintf("%s comment: %s", marker, text))
				break
			}
		}
	}
}
