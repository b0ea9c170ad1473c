package all

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wharflab/relint/internal/config"
)

func TestBuiltin(t *testing.T) {
	checkers := Builtin(config.Default())
	names := make([]string, len(checkers))
	for i, c := range checkers {
		names[i] = c.Name()
	}
	require.Equal(t, []string{"docstyle", "namestyle", "format", "todos", "whitespace"}, names)
}

func TestBuiltin_Disable(t *testing.T) {
	cfg := config.Default()
	cfg.Checkers.Disable = []string{"todos", "whitespace"}

	for _, c := range Builtin(cfg) {
		require.NotContains(t, cfg.Checkers.Disable, c.Name())
	}
}

func TestCustomSpecs(t *testing.T) {
	specs := CustomSpecs(config.Default())
	require.Len(t, specs, 2)
	for _, s := range specs {
		c := s.New()
		require.Equal(t, s.Name, c.Name())
		require.NotEmpty(t, c.Messages())
	}
}

func TestCustomSpecs_Disable(t *testing.T) {
	cfg := config.Default()
	cfg.Checkers.Disable = []string{"header"}

	specs := CustomSpecs(cfg)
	require.Len(t, specs, 1)
	require.Equal(t, "modulename", specs[0].Name)
}
