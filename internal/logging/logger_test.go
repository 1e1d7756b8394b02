package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"textgen/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_InteractiveWithoutFileIsNop(t *testing.T) {
	l, err := New(config.LoggingConfig{Level: "info"}, Options{Interactive: true})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "textgen.log")
	l, err := New(config.LoggingConfig{Level: "info", File: path}, Options{Interactive: true})
	require.NoError(t, err)

	l.Info("hello from test")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestNew_Levels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textgen.log")

	l, err := New(config.LoggingConfig{Level: "warn", File: path}, Options{})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = New(config.LoggingConfig{Level: "warn", File: path}, Options{Verbose: true})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_ConsoleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textgen.log")
	l, err := New(config.LoggingConfig{Format: "console", File: path}, Options{})
	require.NoError(t, err)
	l.Info("console line")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(strings.TrimSpace(string(data)), "{"))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "chatty"}, Options{})
	assert.Error(t, err)
}

func TestFor(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)
	cfg := config.LoggingConfig{Categories: map[string]bool{"ui": false}}

	For(base, cfg, CategoryGenerator).Info("kept")
	For(base, cfg, CategoryUI).Info("dropped")
	For(nil, cfg, CategoryBoot).Info("nil base")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "generator", entries[0].LoggerName)
}
