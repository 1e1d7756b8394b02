package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TEXTGEN_DELAY", "TEXTGEN_SEED", "TEXTGEN_DARK_MODE", "TEXTGEN_LOG_FILE", "TEXTGEN_DEBUG"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.GetDelay() != 2*time.Second {
		t.Errorf("expected delay 2s, got %s", cfg.GetDelay())
	}
	if !cfg.Clipboard {
		t.Error("expected clipboard enabled by default")
	}
	if cfg.UI.Theme != ThemeAuto {
		t.Errorf("expected theme auto, got %s", cfg.UI.Theme)
	}
	if cfg.UI.GetToastDuration() != 4*time.Second {
		t.Errorf("expected toast duration 4s, got %s", cfg.UI.GetToastDuration())
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Delay != "2s" {
		t.Errorf("expected default delay, got %q", cfg.Delay)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Delay = "500ms"
	cfg.Seed = 99
	cfg.UI.Theme = ThemeDark
	cfg.Logging.File = "textgen.log"

	if err := cfg.Save(path, false); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.GetDelay() != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %s", loaded.GetDelay())
	}
	if loaded.Seed != 99 {
		t.Errorf("expected seed 99, got %d", loaded.Seed)
	}
	if loaded.UI.Theme != ThemeDark {
		t.Errorf("expected dark theme, got %s", loaded.UI.Theme)
	}
	if loaded.Logging.File != "textgen.log" {
		t.Errorf("expected log file, got %q", loaded.Logging.File)
	}
}

func TestConfig_SaveRefusesOverwrite(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	if err := cfg.Save(path, false); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg.Delay = "3s"
	if err := cfg.Save(path, false); !errors.Is(err, ErrConfigExists) {
		t.Fatalf("expected ErrConfigExists, got %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Delay != "2s" {
		t.Errorf("file should be untouched, got delay %q", loaded.Delay)
	}

	if err := cfg.Save(path, true); err != nil {
		t.Fatalf("Save with overwrite failed: %v", err)
	}
	loaded, err = Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Delay != "3s" {
		t.Errorf("expected overwritten delay, got %q", loaded.Delay)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind: %v", err)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("delay: 1s\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetDelay() != time.Second {
		t.Errorf("expected 1s, got %s", cfg.GetDelay())
	}
	if !cfg.Clipboard || cfg.UI.MaxToasts != 3 {
		t.Errorf("expected untouched defaults, got %+v", cfg)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("delay: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetDelay_Fallback(t *testing.T) {
	for _, in := range []string{"", "soon", "-1s"} {
		cfg := &Config{Delay: in}
		if got := cfg.GetDelay(); got != 2*time.Second {
			t.Errorf("GetDelay(%q) = %s, want 2s", in, got)
		}
	}
	if got := (&Config{Delay: "0s"}).GetDelay(); got != 0 {
		t.Errorf("zero delay should be allowed, got %s", got)
	}
}

func TestGetToastDuration_Fallback(t *testing.T) {
	if got := (UIConfig{ToastDuration: "0s"}).GetToastDuration(); got != 4*time.Second {
		t.Errorf("expected fallback, got %s", got)
	}
}
