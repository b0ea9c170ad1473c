package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles for the run summary line.
var (
	// Color detection using termenv (respects NO_COLOR, CLICOLOR_FORCE,
	// terminal detection).
	useColors = termenv.EnvColorProfile() != termenv.Ascii

	cleanStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")) // Green

	problemStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")) // Orange
)

// Summary describes one completed run for the stderr trailer.
type Summary struct {
	FilesChecked int
	Modules      int
	Warnings     int
	DiffMode     bool
}

// WriteSummary writes a one-line run summary to w. Styling applies only
// when w is a terminal; the summary always goes to a different stream than
// the canonical report, which must stay byte-exact for round-tripping.
func WriteSummary(w io.Writer, s Summary) {
	styled := useColors && isTerminal(w)

	var line string
	switch {
	case s.Warnings == 0 && s.DiffMode:
		line = "No new warnings."
	case s.Warnings == 0:
		line = fmt.Sprintf("Checked %d files: clean.", s.FilesChecked)
	case s.DiffMode:
		line = fmt.Sprintf("%d new warnings in %d modules.", s.Warnings, s.Modules)
	default:
		line = fmt.Sprintf("Checked %d files: %d warnings in %d modules.",
			s.FilesChecked, s.Warnings, s.Modules)
	}

	if !styled {
		fmt.Fprintln(w, line)
		return
	}

	style := cleanStyle
	if s.Warnings > 0 {
		style = problemStyle
	}
	fmt.Fprintln(w, style.Render(line))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
