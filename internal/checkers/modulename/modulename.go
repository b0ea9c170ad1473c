// Package modulename implements the module naming checker.
package modulename

import (
	"fmt"
	"strings"

	"github.com/wharflab/relint/internal/checker"
	"github.com/wharflab/relint/internal/message"
)

// Message codes emitted by the checker.
const (
	NotLowercase = message.ID("W9011")
	InvalidChars = message.ID("W9012")
)

// Checker verifies that the last segment of a module's dotted name is
// lowercase and uses only letters, digits and underscores.
type Checker struct{}

// New creates the checker.
func New() *Checker { return &Checker{} }

// Name implements checker.Checker.
func (c *Checker) Name() string { return "modulename" }

// Messages implements checker.Checker.
func (c *Checker) Messages() []message.ID {
	return []message.ID{NotLowercase, InvalidChars}
}

// Check implements checker.Checker.
func (c *Checker) Check(in checker.Input, emit checker.EmitFunc) {
	name := in.Module
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return
	}

	if name != strings.ToLower(name) {
		emit(NotLowercase, 1, 0, fmt.Sprintf("Module name %q is not lowercase", name))
		return
	}
	if !validName(name) {
		emit(InvalidChars, 1, 0, fmt.Sprintf("Module name %q contains invalid characters", name))
	}
}

// validName reports whether name uses only [a-z0-9_] and does not start
// with a digit.
func validName(name string) bool {
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
