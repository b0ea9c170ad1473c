package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/relint/internal/config"
	"github.com/wharflab/relint/internal/report"
)

const cleanSource = "// Copyright (c) 2026 Wharflab.\n" +
	"// -*- test-case-name: pkg.clean_test -*-\n" +
	"\n" +
	"// Widget does things.\n" +
	"type Widget struct{}\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(bytes.NewBuffer(nil))
	return log
}

func newRunner(t *testing.T, cfg *config.Config, baseline string) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	r := New(cfg, Options{
		Stdout:   &stdout,
		Stderr:   &stderr,
		Baseline: baseline,
		Log:      quietLogger(),
	})
	return r, &stdout, &stderr
}

func TestRunner_AllowedSet(t *testing.T) {
	r, _, _ := newRunner(t, config.Default(), "")

	for _, id := range BuiltinAllowed() {
		require.True(t, r.Allowed().Contains(id), "builtin %s", id)
	}
	// Custom checker messages join the allow-list.
	require.True(t, r.Allowed().Contains("W9001"))
	require.True(t, r.Allowed().Contains("W9011"))
	// Restricted built-ins stay out.
	require.False(t, r.Allowed().Contains("W0511"))
	require.False(t, r.Allowed().Contains("C0303"))
}

func TestRunner_RestrictionRemovesSilencedCheckers(t *testing.T) {
	r, _, _ := newRunner(t, config.Default(), "")

	names := r.Registry().Names()
	require.NotContains(t, names, "todos")
	require.NotContains(t, names, "whitespace")
	require.Contains(t, names, "format")
	require.Contains(t, names, "header")
}

func TestRunner_DenyMessagesRestrictsFurther(t *testing.T) {
	cfg := config.Default()
	cfg.Checkers.DenyMessages = []string{"C0301", "W0311", "W0312"}

	r, _, _ := newRunner(t, cfg, "")
	require.NotContains(t, r.Registry().Names(), "format")
}

func TestRunner_AllowMessagesEnablesCheckers(t *testing.T) {
	cfg := config.Default()
	cfg.Checkers.AllowMessages = []string{"W0511"}

	r, _, _ := newRunner(t, cfg, "")
	require.Contains(t, r.Registry().Names(), "todos")
}

func TestRunner_NoTargets(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	r, stdout, _ := newRunner(t, config.Default(), "")
	code, err := r.Run(nil)
	require.ErrorIs(t, err, ErrNoTargets)
	require.Equal(t, ExitClean, code)
	require.Empty(t, stdout.String())
}

func TestRunner_CleanRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pkg/clean.go", cleanSource)
	chdir(t, dir)

	r, stdout, stderr := newRunner(t, config.Default(), "")
	code, err := r.Run([]string{"pkg"})
	require.NoError(t, err)
	require.Equal(t, ExitClean, code)
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "clean")
}

func TestRunner_FindingsExitCode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pkg/bare.go", "type Widget struct{}\n")
	chdir(t, dir)

	r, stdout, _ := newRunner(t, config.Default(), "")
	code, err := r.Run([]string{"pkg"})
	require.NoError(t, err)
	require.Equal(t, ExitFindings, code)

	parsed := report.Parse(stdout.String())
	require.Equal(t, []string{"pkg.bare"}, parsed.Modules())
	require.Contains(t, stdout.String(), "W9001:")
	require.Contains(t, stdout.String(), "W9002:")
	require.Contains(t, stdout.String(), "C0111:")
}

func TestRunner_DottedModuleArgument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pkg/bare.go", "type Widget struct{}\n")
	chdir(t, dir)

	r, stdout, _ := newRunner(t, config.Default(), "")
	code, err := r.Run([]string{"pkg.bare"})
	require.NoError(t, err)
	require.Equal(t, ExitFindings, code)
	require.Contains(t, stdout.String(), "************* Module pkg.bare")
}

func TestRunner_MissingBaselineFailsBeforeEvaluation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pkg/bare.go", "type Widget struct{}\n")
	chdir(t, dir)

	r, stdout, stderr := newRunner(t, config.Default(), "no-such-file.txt")
	code, err := r.Run([]string{"pkg"})
	require.NoError(t, err)
	require.Equal(t, ExitFatal, code)
	require.Equal(t, "Error: Result file 'no-such-file.txt' does not exist.\n", stderr.String())
	require.Empty(t, stdout.String())
}

func TestRunner_DiffReportsOnlyNewWarnings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pkg/bare.go", "type Widget struct{}\n")
	chdir(t, dir)

	// Capture the first run as the baseline.
	r, stdout, _ := newRunner(t, config.Default(), "")
	_, err := r.Run([]string{"pkg"})
	require.NoError(t, err)
	baseline := writeFile(t, dir, "baseline.txt", stdout.String())

	// Unchanged code: diff is empty.
	r2, stdout2, stderr2 := newRunner(t, config.Default(), baseline)
	code, err := r2.Run([]string{"pkg"})
	require.NoError(t, err)
	require.Equal(t, ExitClean, code)
	require.Empty(t, stdout2.String())
	require.Contains(t, stderr2.String(), "No new warnings.")

	// A new module appears: only it shows up in the diff.
	writeFile(t, dir, "pkg/extra.go", "type Gadget struct{}\n")
	r3, stdout3, _ := newRunner(t, config.Default(), baseline)
	code, err = r3.Run([]string{"pkg"})
	require.NoError(t, err)
	require.Equal(t, ExitFindings, code)

	diffed := report.Parse(stdout3.String())
	require.Equal(t, []string{"pkg.extra"}, diffed.Modules())
}

func TestRunner_SARIFOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pkg/bare.go", "type Widget struct{}\n")
	chdir(t, dir)

	cfg := config.Default()
	cfg.Output.Format = config.FormatSARIF

	r, stdout, _ := newRunner(t, cfg, "")
	code, err := r.Run([]string{"pkg"})
	require.NoError(t, err)
	require.Equal(t, ExitFindings, code)
	require.Contains(t, stdout.String(), `"relint"`)
	require.Contains(t, stdout.String(), "W9001")
}
