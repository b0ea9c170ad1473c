// Package format implements the line formatting checker: line length and
// indentation.
package format

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/wharflab/relint/internal/checker"
	"github.com/wharflab/relint/internal/config"
	"github.com/wharflab/relint/internal/message"
)

// Message codes emitted by the checker.
const (
	LineTooLong    = message.ID("C0301")
	BadIndentation = message.ID("W0311")
	TabIndentation = message.ID("W0312")
)

// Checker verifies line length and indentation. It also accumulates
// formatting statistics for the optional report section.
type Checker struct {
	maxLineLength int
	indentSize    int
	allowTabs     bool

	linesScanned int
	longestLine  int
	violations   map[message.ID]int
}

// New creates the checker from configuration.
func New(cfg *config.Config) *Checker {
	return &Checker{
		maxLineLength: cfg.Format.MaxLineLength,
		indentSize:    cfg.Format.IndentSize,
		allowTabs:     cfg.Format.AllowTabs,
		violations:    make(map[message.ID]int),
	}
}

// Name implements checker.Checker.
func (c *Checker) Name() string { return "format" }

// Messages implements checker.Checker.
func (c *Checker) Messages() []message.ID {
	return []message.ID{LineTooLong, BadIndentation, TabIndentation}
}

// Options implements checker.OptionsProvider.
func (c *Checker) Options() []checker.Option {
	return []checker.Option{
		{
			Name:    "max-line-length",
			Usage:   "Maximum allowed line length in characters",
			Default: fmt.Sprintf("%d", config.Default().Format.MaxLineLength),
		},
		{
			Name:    "indent-size",
			Usage:   "Required indentation step in spaces",
			Default: fmt.Sprintf("%d", config.Default().Format.IndentSize),
		},
		{
			Name:    "allow-tabs",
			Usage:   "Accept tab characters in indentation",
			Default: "false",
		},
	}
}

// Check implements checker.Checker.
func (c *Checker) Check(in checker.Input, emit checker.EmitFunc) {
	record := func(id message.ID, line, col int, text string) {
		c.violations[id]++
		emit(id, line, col, text)
	}

	for i, line := range in.Lines {
		c.linesScanned++
		length := utf8.RuneCountInString(line)
		if length > c.longestLine {
			c.longestLine = length
		}

		if c.maxLineLength > 0 && length > c.maxLineLength {
			record(LineTooLong, i+1, 0,
				fmt.Sprintf("Line too long (%d/%d)", length, c.maxLineLength))
		}

		indent := leadingWhitespace(line)
		if indent == "" {
			continue
		}
		if strings.ContainsRune(indent, '\t') {
			if !c.allowTabs {
				record(TabIndentation, i+1, 0, "Found indentation with tabs instead of spaces")
			}
			continue
		}
		if c.indentSize > 0 && len(indent)%c.indentSize != 0 {
			record(BadIndentation, i+1, 0,
				fmt.Sprintf("Bad indentation (%d spaces, expected a multiple of %d)", len(indent), c.indentSize))
		}
	}
}

// ReportSection implements checker.StatsProvider.
func (c *Checker) ReportSection(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Report: format\n"+
			"  lines scanned:    %d\n"+
			"  longest line:     %d\n"+
			"  long lines:       %d\n"+
			"  bad indentation:  %d\n"+
			"  tab indentation:  %d\n",
		c.linesScanned,
		c.longestLine,
		c.violations[LineTooLong],
		c.violations[BadIndentation],
		c.violations[TabIndentation])
	return err
}

// leadingWhitespace returns the run of spaces and tabs opening a line. A
// line that is nothing but whitespace has no indentation.
func leadingWhitespace(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}
	return line[:len(line)-len(trimmed)]
}
