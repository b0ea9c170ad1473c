// Package namestyle implements the identifier naming convention checker.
package namestyle

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/wharflab/relint/internal/checker"
	"github.com/wharflab/relint/internal/message"
)

// InvalidName is the message code emitted by the checker.
const InvalidName = message.ID("C0103")

var (
	// goName matches mixed-caps identifiers without underscores.
	goName = regexp.MustCompile(`^_?[A-Za-z][A-Za-z0-9]*$`)

	// pyName matches lowercase snake_case identifiers.
	pyName = regexp.MustCompile(`^_?[a-z][a-z0-9_]*$`)

	declPattern = regexp.MustCompile(`^(func|type|def|class)\s+(?:\([^)]*\)\s*)?([A-Za-z_][A-Za-z0-9_]*)`)
)

// Checker verifies that top-level declaration names follow the naming
// convention of the file's dialect: mixed caps for Go, snake_case for
// Python (class names excepted).
type Checker struct{}

// New creates the checker.
func New() *Checker { return &Checker{} }

// Name implements checker.Checker.
func (c *Checker) Name() string { return "namestyle" }

// Messages implements checker.Checker.
func (c *Checker) Messages() []message.ID {
	return []message.ID{InvalidName}
}

// Check implements checker.Checker.
func (c *Checker) Check(in checker.Input, emit checker.EmitFunc) {
	python := filepath.Ext(in.Path) == ".py"

	for i, line := range in.Lines {
		m := declPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		keyword, name := m[1], m[2]
		if !conforms(keyword, name, python) {
			emit(InvalidName, i+1, 0,
				fmt.Sprintf("Invalid name %q for %s (does not match naming convention)", name, keyword))
		}
	}
}

// conforms reports whether name follows the convention for its declaration
// keyword and dialect.
func conforms(keyword, name string, python bool) bool {
	if !python {
		return goName.MatchString(name)
	}
	// Python class names use CapWords, everything else snake_case.
	if keyword == "class" {
		return goName.MatchString(name) && name[0] >= 'A' && name[0] <= 'Z'
	}
	return pyName.MatchString(name)
}
