// Package docstyle implements the documentation comment checker.
package docstyle

import (
	"fmt"
	"strings"

	"github.com/wharflab/relint/internal/checker"
	"github.com/wharflab/relint/internal/message"
)

// Message codes emitted by the checker.
const (
	MissingDoc = message.ID("C0111")
	EmptyDoc   = message.ID("C0112")
)

// declLeaders are the tokens that open a documented top-level declaration.
var declLeaders = []string{"func ", "type ", "def ", "class "}

// Checker verifies that every top-level declaration is preceded by a
// non-empty documentation comment.
type Checker struct{}

// New creates the checker.
func New() *Checker { return &Checker{} }

// Name implements checker.Checker.
func (c *Checker) Name() string { return "docstyle" }

// Messages implements checker.Checker.
func (c *Checker) Messages() []message.ID {
	return []message.ID{MissingDoc, EmptyDoc}
}

// Check implements checker.Checker.
func (c *Checker) Check(in checker.Input, emit checker.EmitFunc) {
	for i, line := range in.Lines {
		name, ok := declarationName(line)
		if !ok {
			continue
		}
		switch docState(in.Lines, i) {
		case docMissing:
			emit(MissingDoc, i+1, 0, fmt.Sprintf("Missing docstring for %s", name))
		case docEmpty:
			emit(EmptyDoc, i+1, 0, fmt.Sprintf("Empty docstring for %s", name))
		}
	}
}

type docResult int

const (
	docPresent docResult = iota
	docMissing
	docEmpty
)

// docState inspects the comment block ending directly above line i. A blank
// line between the comment and the declaration detaches the comment.
func docState(lines []string, i int) docResult {
	if i == 0 {
		return docMissing
	}
	if _, ok := checker.CommentText(lines[i-1]); !ok {
		return docMissing
	}
	for j := i - 1; j >= 0; j-- {
		text, isComment := checker.CommentText(lines[j])
		if !isComment {
			break
		}
		if text != "" {
			return docPresent
		}
	}
	return docEmpty
}

// declarationName extracts the identifier of a top-level declaration, or
// reports that the line opens none. Indented lines are nested and skipped.
func declarationName(line string) (string, bool) {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return "", false
	}
	for _, leader := range declLeaders {
		if strings.HasPrefix(line, leader) {
			rest := strings.TrimSpace(line[len(leader):])
			return firstIdentifier(rest), true
		}
	}
	return "", false
}

// firstIdentifier returns the leading identifier of s, skipping a Go method
// receiver when present.
func firstIdentifier(s string) string {
	if strings.HasPrefix(s, "(") {
		if i := strings.Index(s, ")"); i >= 0 {
			s = strings.TrimSpace(s[i+1:])
		}
	}
	end := len(s)
	for i, r := range s {
		if !isIdentRune(r, i) {
			end = i
			break
		}
	}
	if end == 0 {
		return "declaration"
	}
	return s[:end]
}

func isIdentRune(r rune, pos int) bool {
	switch {
	case r == '_':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return pos > 0
	default:
		return false
	}
}
