package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wharflab/relint/internal/checker"
	"github.com/wharflab/relint/internal/checkers/format"
	"github.com/wharflab/relint/internal/checkers/whitespace"
	"github.com/wharflab/relint/internal/config"
	"github.com/wharflab/relint/internal/message"
	"github.com/wharflab/relint/internal/report"
	"github.com/wharflab/relint/internal/reporter"
)

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

func newEngine(t *testing.T, cfg *config.Config, allowed message.Set, sink *bytes.Buffer) *Engine {
	t.Helper()
	reg := checker.NewRegistry()
	reg.Register(format.New(cfg))
	reg.Register(whitespace.New())
	return New(reg, reporter.NewLimited(sink, allowed), cfg, nil)
}

func TestEngine_Evaluate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pkg/good.go", "x := 1\n")
	writeFile(t, dir, "pkg/long.go", strings.Repeat("x", 100)+"\n")
	chdir(t, dir)

	cfg := config.Default()
	var buf bytes.Buffer
	allowed := message.NewSet("C0301")
	e := newEngine(t, cfg, allowed, &buf)

	stats, err := e.Evaluate([]string{"pkg"})
	require.NoError(t, err)
	require.Equal(t, 2, stats.FilesChecked)
	require.Equal(t, 1, stats.Warnings)

	parsed := report.Parse(buf.String())
	require.Equal(t, []string{"pkg.long"}, parsed.Modules())
}

func TestEngine_DisallowedMessagesSuppressed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pkg/bad.go", "x := 1  \n")
	chdir(t, dir)

	cfg := config.Default()
	var buf bytes.Buffer
	e := newEngine(t, cfg, message.NewSet("C0301"), &buf)

	stats, err := e.Evaluate([]string{"pkg"})
	require.NoError(t, err)
	require.Equal(t, 0, stats.Warnings)
	require.Empty(t, buf.String())
}

func TestEngine_UnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions do not apply to root")
	}

	dir := t.TempDir()
	path := writeFile(t, dir, "locked.go", "x := 1\n")
	require.NoError(t, os.Chmod(path, 0o000))
	chdir(t, dir)

	cfg := config.Default()
	var buf bytes.Buffer
	e := newEngine(t, cfg, message.NewSet(ReadFailure), &buf)

	stats, err := e.Evaluate([]string{"locked.go"})
	require.NoError(t, err)
	require.Equal(t, 1, stats.Warnings)
	require.Contains(t, buf.String(), "F0001:")
	require.Contains(t, buf.String(), "Unable to read file")
}

func TestEngine_SetOutputRedirects(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pkg/long.go", strings.Repeat("x", 100)+"\n")
	chdir(t, dir)

	cfg := config.Default()
	var first, second bytes.Buffer
	e := newEngine(t, cfg, message.NewSet("C0301"), &first)
	e.SetOutput(&second)

	_, err := e.Evaluate([]string{"pkg"})
	require.NoError(t, err)
	require.Empty(t, first.String())
	require.Contains(t, second.String(), "C0301:")
}

func TestEngine_ReportSections(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pkg/long.go", strings.Repeat("x", 100)+"\n")
	chdir(t, dir)

	cfg := config.Default()
	cfg.Checkers.Reports = true
	var buf bytes.Buffer
	e := newEngine(t, cfg, message.NewSet("C0301"), &buf)

	_, err := e.Evaluate([]string{"pkg"})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Report: format")
}
