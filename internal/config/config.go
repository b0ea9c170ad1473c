// Package config provides configuration loading and discovery for relint.
//
// Configuration is loaded from multiple sources with the following priority
// (highest to lowest):
//  1. CLI flags
//  2. Environment variables (RELINT_* prefix)
//  3. Config file (closest .relint.toml or relint.toml)
//  4. Built-in defaults
//
// Config file discovery follows a cascading pattern: starting from the
// target's directory, walk up the filesystem until a config file is found.
// The closest config wins (no merging).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigFileNames defines the config file names to search for, in priority order.
var ConfigFileNames = []string{".relint.toml", "relint.toml"}

// EnvPrefix is the prefix for environment variables.
const EnvPrefix = "RELINT_"

// Config represents the complete relint configuration.
type Config struct {
	// Checkers controls which checkers register and which messages are visible.
	Checkers CheckersConfig `json:"checkers" koanf:"checkers" toml:"checkers"`

	// Format configures the layout checkers (line length, indentation).
	Format FormatConfig `json:"format" koanf:"format" toml:"format"`

	// Header configures the copyright/test-reference header checker.
	Header HeaderConfig `json:"header" koanf:"header" toml:"header"`

	// Discovery configures source file discovery.
	Discovery DiscoveryConfig `json:"discovery" koanf:"discovery" toml:"discovery"`

	// Output configures output format and destination.
	Output OutputConfig `json:"output" koanf:"output" toml:"output"`

	// ConfigFile is the path to the config file that was loaded (if any).
	// This is metadata, not loaded from config.
	ConfigFile string `json:"-" koanf:"-" toml:"-"`
}

// CheckersConfig controls checker registration and message visibility.
//
// Example TOML configuration:
//
//	[checkers]
//	disable = ["todos"]
//	allow-messages = ["C0112"]
//	deny-messages = ["W0312"]
type CheckersConfig struct {
	// Disable lists checker names that are never registered.
	Disable []string `json:"disable,omitempty" koanf:"disable" toml:"disable,omitempty"`

	// AllowMessages adds message codes to the run's allow-list.
	AllowMessages []string `json:"allow-messages,omitempty" koanf:"allow-messages" toml:"allow-messages,omitempty"`

	// DenyMessages removes message codes from the run's allow-list.
	// Denial wins over allowance.
	DenyMessages []string `json:"deny-messages,omitempty" koanf:"deny-messages" toml:"deny-messages,omitempty"`

	// Reports enables post-run checker report sections on the output sink.
	Reports bool `json:"reports,omitempty" koanf:"reports" toml:"reports,omitempty"`
}

// FormatConfig configures the layout checkers.
type FormatConfig struct {
	// MaxLineLength is the longest permitted line (0 = unlimited).
	MaxLineLength int `json:"max-line-length,omitempty" koanf:"max-line-length" toml:"max-line-length,omitempty"`

	// IndentSize is the expected indentation step in spaces (0 disables
	// the indentation check).
	IndentSize int `json:"indent-size,omitempty" koanf:"indent-size" toml:"indent-size,omitempty"`

	// AllowTabs permits tab indentation (mixed tabs and spaces stay flagged).
	AllowTabs bool `json:"allow-tabs,omitempty" koanf:"allow-tabs" toml:"allow-tabs,omitempty"`
}

// HeaderConfig configures the header checker.
type HeaderConfig struct {
	// CopyrightPattern is a regular expression the file's leading comment
	// block must match.
	CopyrightPattern string `json:"copyright-pattern,omitempty" koanf:"copyright-pattern" toml:"copyright-pattern,omitempty"`

	// RequireTestReference requires non-test modules to name their test
	// module in the header (test-case-name marker).
	RequireTestReference bool `json:"require-test-reference,omitempty" koanf:"require-test-reference" toml:"require-test-reference,omitempty"`
}

// DiscoveryConfig configures source file discovery.
type DiscoveryConfig struct {
	// Patterns are the source file glob patterns matched inside directories.
	Patterns []string `json:"patterns,omitempty" koanf:"patterns" toml:"patterns,omitempty"`

	// Exclude are doublestar glob patterns excluded from discovery.
	Exclude []string `json:"exclude,omitempty" koanf:"exclude" toml:"exclude,omitempty"`
}

// Output format names accepted by OutputConfig.Format.
const (
	FormatText  = "text"
	FormatSARIF = "sarif"
)

// OutputConfig configures output formatting and behavior.
type OutputConfig struct {
	// Format specifies the output format: text or sarif.
	Format string `json:"format,omitempty" koanf:"format" toml:"format,omitempty"`

	// Path specifies where to write output: stdout, stderr, or a file path.
	Path string `json:"path,omitempty" koanf:"path" toml:"path,omitempty"`

	// Summary enables the one-line stderr run summary.
	Summary bool `json:"summary,omitempty" koanf:"summary" toml:"summary,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Checkers: CheckersConfig{},
		Format: FormatConfig{
			MaxLineLength: 79,
			IndentSize:    4,
		},
		Header: HeaderConfig{
			CopyrightPattern:     `(?i)copyright`,
			RequireTestReference: true,
		},
		Discovery: DiscoveryConfig{
			Patterns: []string{"*.go", "*.py"},
		},
		Output: OutputConfig{
			Format:  FormatText,
			Path:    "stdout",
			Summary: true,
		},
	}
}

// Load loads configuration for a target path. It discovers the closest
// config file, loads it, and applies environment variable overrides.
func Load(targetPath string) (*Config, error) {
	return loadWithConfigPath(Discover(targetPath))
}

// LoadFromFile loads configuration from a specific config file path.
// Unlike Load, it does not perform config discovery.
func LoadFromFile(configPath string) (*Config, error) {
	return loadWithConfigPath(configPath)
}

func loadWithConfigPath(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, err
	}

	// 2. Load config file if provided
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, err
		}
	}

	// 3. Load environment variables (RELINT_* prefix)
	// RELINT_FORMAT_MAX_LINE_LENGTH -> format.max-line-length
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKeyTransform,
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	cfg.ConfigFile = configPath
	return &cfg, nil
}

// knownHyphenatedKeys maps dot-separated patterns to their hyphenated
// equivalents. Add new entries here when adding hyphenated config keys.
var knownHyphenatedKeys = map[string]string{
	"allow.messages":         "allow-messages",
	"deny.messages":          "deny-messages",
	"max.line.length":        "max-line-length",
	"indent.size":            "indent-size",
	"allow.tabs":             "allow-tabs",
	"copyright.pattern":      "copyright-pattern",
	"require.test.reference": "require-test-reference",
}

var allowedEnvTopLevelKeys = map[string]struct{}{
	"checkers":  {},
	"format":    {},
	"header":    {},
	"discovery": {},
	"output":    {},
}

// envKeyTransform converts environment variable names to config keys.
// RELINT_OUTPUT_FORMAT -> output.format
// RELINT_FORMAT_MAX_LINE_LENGTH -> format.max-line-length
func envKeyTransform(k, v string) (string, any) {
	s := strings.TrimPrefix(k, EnvPrefix)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", ".")
	for pattern, replacement := range knownHyphenatedKeys {
		s = strings.ReplaceAll(s, pattern, replacement)
	}

	topLevel := s
	if before, _, ok := strings.Cut(s, "."); ok {
		topLevel = before
	}
	if _, ok := allowedEnvTopLevelKeys[topLevel]; !ok {
		return "", nil
	}

	return s, v
}

// Discover finds the closest config file for a target path. It walks up the
// directory tree from the target's directory, checking for config files at
// each level. Returns empty string if no config file is found.
func Discover(targetPath string) string {
	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return ""
	}

	dir := absPath
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		dir = filepath.Dir(absPath)
	}

	for {
		for _, name := range ConfigFileNames {
			configPath := filepath.Join(dir, name)
			if fileExists(configPath) {
				return configPath
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return ""
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
