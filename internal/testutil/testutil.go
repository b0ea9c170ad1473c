// Package testutil provides test helpers for the checker packages.
package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/wharflab/relint/internal/checker"
	"github.com/wharflab/relint/internal/message"
)

// MakeInput builds a checker.Input for testing a checker against inline
// source content. The module name also determines IsTest.
func MakeInput(tb testing.TB, module, content string) checker.Input {
	tb.Helper()

	last := module
	if i := strings.LastIndex(module, "."); i >= 0 {
		last = module[i+1:]
	}

	return checker.Input{
		Path:   strings.ReplaceAll(module, ".", "/") + ".go",
		Module: module,
		Source: []byte(content),
		Lines:  strings.Split(content, "\n"),
		IsTest: strings.HasSuffix(last, "_test"),
	}
}

// Finding is one emitted finding captured by Collect.
type Finding struct {
	ID   message.ID
	Line int
	Col  int
	Text string
}

// Collect runs a checker over in and returns every emitted finding.
func Collect(c checker.Checker, in checker.Input) []Finding {
	var findings []Finding
	c.Check(in, func(id message.ID, line, col int, text string) {
		findings = append(findings, Finding{ID: id, Line: line, Col: col, Text: text})
	})
	return findings
}

// AssertMessageIDs fails the test unless the findings carry exactly the
// wanted message IDs (order-insensitive, duplicates significant).
func AssertMessageIDs(tb testing.TB, findings []Finding, want []message.ID) {
	tb.Helper()

	got := make([]string, len(findings))
	for i, f := range findings {
		got[i] = string(f.ID)
	}
	expected := make([]string, len(want))
	for i, id := range want {
		expected[i] = string(id)
	}
	sort.Strings(got)
	sort.Strings(expected)

	if strings.Join(got, ",") != strings.Join(expected, ",") {
		tb.Errorf("message IDs = [%s], want [%s]", strings.Join(got, ","), strings.Join(expected, ","))
	}
}
