// Package discovery resolves check targets into concrete source locations.
package discovery

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns returns the default source file patterns matched when
// expanding directories.
func DefaultPatterns() []string {
	return []string{"*.go", "*.py"}
}

// DefaultExtensions returns the extensions tried when resolving a dotted
// module name to a source file.
func DefaultExtensions() []string {
	return []string{".go", ".py"}
}

// Options configures target resolution and directory expansion.
type Options struct {
	// Patterns are the source file glob patterns matched inside directories
	// (default: DefaultPatterns()).
	Patterns []string

	// Extensions are tried, in order, when resolving dotted module names
	// (default: DefaultExtensions()).
	Extensions []string

	// Exclude are doublestar glob patterns excluded from results.
	Exclude []string
}

// NotFoundError reports an argument that resolved to neither an existing
// path nor a module location.
type NotFoundError struct {
	Arg string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no file or module matches %q", e.Arg)
}

// Resolve turns positional arguments into concrete check targets.
// Existing paths pass through unchanged (directories are expanded later, by
// Expand); a dotted module name such as "pkg.sub.mod" resolves to the
// directory pkg/sub/mod or the first pkg/sub/mod.<ext> that exists.
// Unresolvable arguments are dropped and reported through the returned
// NotFoundError slice; resolution itself never fails.
func Resolve(args []string, opts Options) (targets []string, missing []*NotFoundError) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions()
	}

	for _, arg := range args {
		if pathExists(arg) {
			targets = append(targets, arg)
			continue
		}

		if resolved, ok := resolveModule(arg, exts); ok {
			targets = append(targets, resolved)
			continue
		}

		missing = append(missing, &NotFoundError{Arg: arg})
	}
	return targets, missing
}

// resolveModule maps a dotted module name to its source location.
func resolveModule(arg string, exts []string) (string, bool) {
	if strings.ContainsAny(arg, `/\`) || !strings.Contains(arg, ".") {
		return "", false
	}

	base := filepath.FromSlash(strings.ReplaceAll(arg, ".", "/"))
	if info, err := os.Stat(base); err == nil && info.IsDir() {
		return base, true
	}
	for _, ext := range exts {
		candidate := base + ext
		if pathExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Expand turns resolved targets into the concrete file list the engine
// evaluates: files pass through, directories are searched recursively for
// files matching the patterns. Results are deduplicated by absolute path
// and sorted.
func Expand(targets []string, opts Options) ([]string, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}

	seen := make(map[string]bool)
	var results []string

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(target, opts, seen, &results)
			continue
		}

		for _, pattern := range patterns {
			// Recursive and direct matches inside the directory.
			for _, glob := range []string{
				filepath.Join(target, "**", pattern),
				filepath.Join(target, pattern),
			} {
				matches, err := doublestar.FilepathGlob(glob, doublestar.WithFilesOnly())
				if err != nil {
					return nil, err
				}
				for _, match := range matches {
					addFile(match, opts, seen, &results)
				}
			}
		}
	}

	slices.SortFunc(results, func(a, b string) int { return cmp.Compare(a, b) })
	return results, nil
}

func addFile(path string, opts Options, seen map[string]bool, results *[]string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return
	}
	if seen[absPath] || isExcluded(absPath, opts.Exclude) {
		return
	}
	seen[absPath] = true
	*results = append(*results, path)
}

// isExcluded checks a path against the exclusion patterns using a
// three-step strategy: the full absolute path, the bare filename, and each
// suffix subpath. Suffix matching lets a pattern like "vendor/*" exclude
// direct children of any vendor directory without matching deeper files.
//
// doublestar.Match expects forward slashes even on Windows, so paths are
// normalized before matching.
func isExcluded(absPath string, exclude []string) bool {
	absPathSlash := filepath.ToSlash(absPath)
	base := filepath.Base(absPathSlash)

	for _, pattern := range exclude {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.Match(pattern, absPathSlash); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}

		parts := splitPath(absPath)
		for i := range parts {
			subpath := filepath.ToSlash(filepath.Join(parts[i:]...))
			if matched, err := doublestar.Match(pattern, subpath); err == nil && matched {
				return true
			}
		}
	}
	return false
}

// splitPath splits a path into its directory and filename components,
// stripping the root. Used to generate suffix subpaths for exclusion
// matching.
func splitPath(path string) []string {
	var parts []string
	for path != "" {
		dir, file := filepath.Split(path)
		if file != "" {
			parts = append([]string{file}, parts...)
		}
		path = filepath.Clean(dir)

		if path == "/" || path == "." {
			break
		}
		vol := filepath.VolumeName(path)
		if vol != "" && (path == vol || path == vol+string(filepath.Separator)) {
			break
		}
	}
	return parts
}

// ModuleName derives the dotted module name for a source file path:
// the extension is stripped and path separators become dots. The path is
// used relative to the current directory when possible so module names stay
// stable across machines.
func ModuleName(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		if wd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(wd, abs); err == nil && !strings.HasPrefix(rel, "..") {
				path = rel
			}
		}
	}
	path = strings.TrimSuffix(path, filepath.Ext(path))
	path = filepath.ToSlash(filepath.Clean(path))
	path = strings.TrimPrefix(path, "./")
	return strings.ReplaceAll(path, "/", ".")
}

// IsTestModule reports whether the dotted module name denotes a test
// module (last segment ends in "_test").
func IsTestModule(module string) bool {
	last := module
	if i := strings.LastIndex(module, "."); i >= 0 {
		last = module[i+1:]
	}
	return strings.HasSuffix(last, "_test")
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
