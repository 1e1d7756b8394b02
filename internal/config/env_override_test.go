package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("TEXTGEN_DELAY replaces delay", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TEXTGEN_DELAY", "250ms")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "250ms", cfg.Delay)
	})

	t.Run("TEXTGEN_SEED parses unsigned integers", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TEXTGEN_SEED", "12345")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, uint64(12345), cfg.Seed)
	})

	t.Run("invalid TEXTGEN_SEED is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TEXTGEN_SEED", "-3")

		cfg := &Config{Seed: 8}
		cfg.applyEnvOverrides()

		assert.Equal(t, uint64(8), cfg.Seed)
	})

	t.Run("TEXTGEN_DARK_MODE forces dark theme", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TEXTGEN_DARK_MODE", "1")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, ThemeDark, cfg.UI.Theme)
	})

	t.Run("TEXTGEN_DEBUG enables debug logging", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TEXTGEN_DEBUG", "1")
		t.Setenv("TEXTGEN_LOG_FILE", "/tmp/textgen.log")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.Logging.DebugMode)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "/tmp/textgen.log", cfg.Logging.File)
	})

	t.Run("empty env leaves config alone", func(t *testing.T) {
		clearEnv(t)

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, DefaultConfig(), cfg)
	})
}
