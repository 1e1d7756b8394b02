// Package logging builds the zap logger used across textgen.
//
// In the interactive TUI stdout belongs to the screen, so logs are only
// written when a log file is configured or debug mode is on; otherwise a
// no-op logger is returned. Headless commands log to stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"textgen/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem. Each category gets a named child logger and
// can be switched off in logging.categories.
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config loading
	CategoryGenerator Category = "generator" // Template selection and delay
	CategoryWidget    Category = "widget"    // Form state transitions
	CategoryUI        Category = "ui"        // TUI events
	CategoryNotify    Category = "notify"    // Toast notifications
)

// DefaultDebugFile is used in the TUI when debug mode is on but no file is set.
const DefaultDebugFile = ".textgen/logs/textgen.log"

// Options adjusts logger construction.
type Options struct {
	Verbose     bool // force debug level
	Interactive bool // stdout/stderr are owned by the TUI
}

// New builds a logger from cfg.
func New(cfg config.LoggingConfig, opts Options) (*zap.Logger, error) {
	file := cfg.File
	if opts.Interactive {
		if file == "" && !cfg.DebugMode && !opts.Verbose {
			return zap.NewNop(), nil
		}
		if file == "" {
			file = DefaultDebugFile
		}
	}

	zc := zap.NewProductionConfig()
	if strings.EqualFold(cfg.Format, "console") {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose || cfg.DebugMode {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		zc.OutputPaths = []string{file}
		zc.ErrorOutputPaths = []string{file}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func parseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warning":
		return zapcore.WarnLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}

// For returns the named child logger for category, or a no-op logger when
// the category is disabled.
func For(base *zap.Logger, cfg config.LoggingConfig, category Category) *zap.Logger {
	if base == nil || !cfg.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return base.Named(string(category))
}
