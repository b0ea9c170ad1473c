// Package header implements the copyright and test-reference header checker.
package header

import (
	"regexp"
	"strings"

	"github.com/wharflab/relint/internal/checker"
	"github.com/wharflab/relint/internal/config"
	"github.com/wharflab/relint/internal/message"
)

// Message codes emitted by the checker.
const (
	MissingCopyright     = message.ID("W9001")
	MissingTestReference = message.ID("W9002")
)

// TestReferenceMarker is the header marker naming a module's test module.
const TestReferenceMarker = "test-case-name:"

// Checker verifies that every file opens with a header comment block that
// carries a copyright notice and, for non-test modules, a reference to the
// module's test module.
type Checker struct {
	copyright      *regexp.Regexp
	requireTestRef bool
}

// New creates the checker from configuration. An invalid copyright pattern
// falls back to the default.
func New(cfg *config.Config) *Checker {
	pattern := cfg.Header.CopyrightPattern
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = regexp.MustCompile(config.Default().Header.CopyrightPattern)
	}
	return &Checker{
		copyright:      re,
		requireTestRef: cfg.Header.RequireTestReference,
	}
}

// Name implements checker.Checker.
func (c *Checker) Name() string { return "header" }

// Messages implements checker.Checker.
func (c *Checker) Messages() []message.ID {
	return []message.ID{MissingCopyright, MissingTestReference}
}

// Options implements checker.OptionsProvider.
func (c *Checker) Options() []checker.Option {
	return []checker.Option{
		{
			Name:    "copyright-pattern",
			Usage:   "Regular expression the header comment must match",
			Default: config.Default().Header.CopyrightPattern,
		},
		{
			Name:    "require-test-reference",
			Usage:   "Require non-test modules to carry a test-case-name marker",
			Default: "true",
		},
	}
}

// Check implements checker.Checker.
func (c *Checker) Check(in checker.Input, emit checker.EmitFunc) {
	block := checker.HeaderBlock(in.Lines)

	if !c.headerMatches(block, c.copyright.MatchString) {
		emit(MissingCopyright, 1, 0, "Missing copyright header")
	}

	if c.requireTestRef && !in.IsTest && !c.headerMatches(block, hasTestReference) {
		emit(MissingTestReference, 1, 0, "Missing a reference to test module in header")
	}
}

func (c *Checker) headerMatches(block []string, match func(string) bool) bool {
	for _, line := range block {
		if match(line) {
			return true
		}
	}
	return false
}

func hasTestReference(line string) bool {
	return strings.Contains(line, TestReferenceMarker)
}
