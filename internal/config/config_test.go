package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-planner/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.False(t, cfg.Psql.Enabled)
	assert.False(t, cfg.Gemini.Enabled())
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.Gemini.Model)
	assert.Equal(t, 20*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 2, cfg.Planner.MaxActiveSeasons)
	assert.Equal(t, "log-sum", cfg.Planner.CompositionMethod)
	assert.Equal(t, "weighted", cfg.Planner.RatioMode)
	assert.Equal(t, "SAR", cfg.Planner.Currency)
	assert.True(t, cfg.Planner.ConcurrentExternal)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PLANNER_RATIO_MODE", "summed")
	t.Setenv("PLANNER_MAX_ACTIVE_SEASONS", "3")
	t.Setenv("PSQL_ENABLED", "true")

	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("GEMINI_API_KEY=secret\nPLANNER_RATIO_MODE=weighted\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("GEMINI_API_KEY") })

	cfg, err := Load(dotenv)
	require.NoError(t, err)

	assert.True(t, cfg.Gemini.Enabled())
	// the environment wins over .env
	assert.Equal(t, "summed", cfg.Planner.RatioMode)
	assert.Equal(t, 3, cfg.Planner.MaxActiveSeasons)
	assert.True(t, cfg.Psql.Enabled)
}

func TestLoggerSection(t *testing.T) {
	cases := []struct {
		level, format string
		wantLevel     slog.Level
		wantFormat    string
	}{
		{"debug", "json", slog.LevelDebug, "json"},
		{"WARNING", "JSON", slog.LevelWarn, "json"},
		{"err", "text", slog.LevelError, "text"},
		{"verbose", "xml", slog.LevelInfo, "text"},
	}
	for _, c := range cases {
		l := configs.Logger{Level: c.level, Format: c.format}
		assert.Equal(t, c.wantLevel, l.SlogLevel(), c.level)
		assert.Equal(t, c.wantFormat, l.SlogFormat(), c.format)
	}
}
