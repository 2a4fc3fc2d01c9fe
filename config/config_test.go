package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/simplehardware/labyrinth/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Size:       21,
		Players:    4,
		Attempts:   40,
		Tolerance:  0.2,
		CenterPool: 20,
		LogLevel:   "info",
		LogFormat:  "text",
	}, cfg)
	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.PlacementOptions(), 3)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("LABYRINTH_SIZE", "15")
	t.Setenv("LABYRINTH_SEED", "1234")
	t.Setenv("LABYRINTH_STRICT_SPREAD", "true")
	t.Setenv("LABYRINTH_LOG_FORMAT", "JSON")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Size)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.True(t, cfg.StrictSpread)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Len(t, cfg.PlacementOptions(), 4)
}

func TestFromEnv_BadValue(t *testing.T) {
	t.Setenv("LABYRINTH_PLAYERS", "many")
	_, err := config.FromEnv()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base, err := config.FromEnv()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"size", func(c *config.Config) { c.Size = 4 }},
		{"no players", func(c *config.Config) { c.Players = 0 }},
		{"too many players", func(c *config.Config) { c.Players = 9 }},
		{"attempts", func(c *config.Config) { c.Attempts = 0 }},
		{"tolerance", func(c *config.Config) { c.Tolerance = -1 }},
		{"center pool", func(c *config.Config) { c.CenterPool = 0 }},
		{"log level", func(c *config.Config) { c.LogLevel = "loud" }},
		{"log format", func(c *config.Config) { c.LogFormat = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mutate(&c)
			assert.True(t, errors.Is(c.Validate(), config.ErrInvalidConfig))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.hcl")
	src := `
maze {
  size          = 31
  players       = max_players
  seed          = 42
  tolerance     = 0.25
  strict_spread = true
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	base, err := config.FromEnv()
	require.NoError(t, err)
	cfg, err := config.LoadFile(path, base)
	require.NoError(t, err)

	assert.Equal(t, 31, cfg.Size)
	assert.Equal(t, 8, cfg.Players)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 0.25, cfg.Tolerance)
	assert.True(t, cfg.StrictSpread)
	assert.Equal(t, base.Attempts, cfg.Attempts)
	assert.NoError(t, cfg.Validate())
}

func TestParse_NoBlockKeepsBase(t *testing.T) {
	base := config.Config{Size: 9}
	cfg, err := config.Parse([]byte(""), "empty.hcl", base)
	require.NoError(t, err)
	assert.Equal(t, base, cfg)
}

func TestParse_Errors(t *testing.T) {
	_, err := config.Parse([]byte("maze {"), "broken.hcl", config.Config{})
	assert.ErrorContains(t, err, "failed to parse")

	_, err = config.Parse([]byte("maze {\n  colour = \"red\"\n}\n"), "unknown.hcl", config.Config{})
	assert.ErrorContains(t, err, "failed to decode")

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.hcl"), config.Config{})
	assert.Error(t, err)
}
