// Package all assembles the built-in and custom checkers.
package all

import (
	"slices"

	"github.com/wharflab/relint/internal/checker"
	"github.com/wharflab/relint/internal/checkers/docstyle"
	"github.com/wharflab/relint/internal/checkers/format"
	"github.com/wharflab/relint/internal/checkers/header"
	"github.com/wharflab/relint/internal/checkers/modulename"
	"github.com/wharflab/relint/internal/checkers/namestyle"
	"github.com/wharflab/relint/internal/checkers/todos"
	"github.com/wharflab/relint/internal/checkers/whitespace"
	"github.com/wharflab/relint/internal/config"
)

// Builtin returns the built-in checkers, skipping any named in the
// configuration's disable list.
func Builtin(cfg *config.Config) []checker.Checker {
	candidates := []checker.Checker{
		docstyle.New(),
		namestyle.New(),
		format.New(cfg),
		todos.New(),
		whitespace.New(),
	}

	var out []checker.Checker
	for _, c := range candidates {
		if slices.Contains(cfg.Checkers.Disable, c.Name()) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CustomSpecs returns the custom checker constructors, skipping any named
// in the configuration's disable list.
func CustomSpecs(cfg *config.Config) []checker.Spec {
	candidates := []checker.Spec{
		{Name: "header", New: func() checker.Checker { return header.New(cfg) }},
		{Name: "modulename", New: func() checker.Checker { return modulename.New() }},
	}

	var out []checker.Spec
	for _, s := range candidates {
		if slices.Contains(cfg.Checkers.Disable, s.Name) {
			continue
		}
		out = append(out, s)
	}
	return out
}
