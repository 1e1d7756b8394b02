package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all textgen configuration.
type Config struct {
	// Delay before a generation resolves, as a Go duration string.
	Delay string `yaml:"delay"`

	// Seed makes template selection reproducible. Zero means unseeded.
	Seed uint64 `yaml:"seed"`

	// Clipboard enables writes to the system clipboard.
	Clipboard bool `yaml:"clipboard"`

	// UI settings
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfigPath is where Load looks when no --config flag is given.
const DefaultConfigPath = ".textgen/config.yaml"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Delay:     "2s",
		Clipboard: true,
		UI:        *DefaultUIConfig(),
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// ErrConfigExists is returned by Save when the file is already present and
// overwrite was not requested.
var ErrConfigExists = errors.New("config file already exists")

// Save writes c to path as YAML, creating parent directories. An existing
// file is only replaced when overwrite is set. The file is written next to
// path and renamed into place.
func (c *Config) Save(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if d := os.Getenv("TEXTGEN_DELAY"); d != "" {
		c.Delay = d
	}
	if s := os.Getenv("TEXTGEN_SEED"); s != "" {
		if seed, err := strconv.ParseUint(s, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if os.Getenv("TEXTGEN_DARK_MODE") == "1" {
		c.UI.Theme = ThemeDark
	}
	if path := os.Getenv("TEXTGEN_LOG_FILE"); path != "" {
		c.Logging.File = path
	}
	if os.Getenv("TEXTGEN_DEBUG") == "1" {
		c.Logging.DebugMode = true
		c.Logging.Level = "debug"
	}
}

// GetDelay returns the generation delay as a duration.
func (c *Config) GetDelay() time.Duration {
	d, err := time.ParseDuration(c.Delay)
	if err != nil || d < 0 {
		return 2 * time.Second
	}
	return d
}
