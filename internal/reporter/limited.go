// Package reporter provides the output writers for check results.
//
// The Limited reporter produces the canonical module-header text format
// that the report parser consumes; the two must stay byte-compatible.
// The summary writer is cosmetic only and never touches the report sink.
package reporter

import (
	"fmt"
	"io"

	"github.com/wharflab/relint/internal/message"
)

// ModuleHeaderPrefix opens a module section. Kept identical to the report
// package's constant; the formats must match byte for byte.
const ModuleHeaderPrefix = "************* Module "

// Limited writes findings in the canonical text format, suppressing any
// finding whose message ID is not in the allowed set. Restriction removes
// whole checkers ahead of time; this filter is the per-message guarantee
// for checkers that emit a mix of allowed and disallowed codes.
type Limited struct {
	w       io.Writer
	allowed message.Set

	module  string
	emitted int
	dropped int

	modules    map[string]struct{}
	bySeverity map[message.Severity]int
}

// NewLimited creates a Limited reporter writing to w.
func NewLimited(w io.Writer, allowed message.Set) *Limited {
	return &Limited{
		w:          w,
		allowed:    allowed,
		modules:    make(map[string]struct{}),
		bySeverity: make(map[message.Severity]int),
	}
}

// SetOutput redirects the reporter to a new sink. The current-module state
// resets: a new sink means a new document.
func (l *Limited) SetOutput(w io.Writer) {
	l.w = w
	l.module = ""
}

// Output returns the current sink.
func (l *Limited) Output() io.Writer {
	return l.w
}

// Emit writes one finding for module. The module header line is written
// lazily, once per consecutive run of findings for the same module.
// Line is 1-based, col 0-based. Multi-line text produces continuation
// lines below the primary line.
func (l *Limited) Emit(module string, id message.ID, line, col int, text string) {
	if !l.allowed.Contains(id) {
		l.dropped++
		return
	}
	if module != l.module {
		fmt.Fprintf(l.w, "%s%s\n", ModuleHeaderPrefix, module)
		l.module = module
	}
	fmt.Fprintf(l.w, "%s:  %d,%d: %s\n", id, line, col, text)
	l.emitted++
	l.modules[module] = struct{}{}
	l.bySeverity[id.Severity()]++
}

// Emitted returns the number of findings written.
func (l *Limited) Emitted() int {
	return l.emitted
}

// Modules returns the number of distinct modules with emitted findings.
func (l *Limited) Modules() int {
	return len(l.modules)
}

// Dropped returns the number of findings suppressed by the allow-list.
func (l *Limited) Dropped() int {
	return l.dropped
}

// BySeverity returns the emitted finding count for one severity class.
func (l *Limited) BySeverity(s message.Severity) int {
	return l.bySeverity[s]
}
