package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/cadre-oss/pyvengers/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
name: avengers-hq
data:
  file: /tmp/heroes.json
logging:
  level: debug
  format: json
  file: logs/pyvengers.log
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Name != "avengers-hq" {
		t.Errorf("expected name avengers-hq, got %s", cfg.Name)
	}
	if cfg.Data.File != "/tmp/heroes.json" {
		t.Errorf("expected data file /tmp/heroes.json, got %s", cfg.Data.File)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format json, got %s", cfg.Logging.Format)
	}
	if cfg.Logging.File != "logs/pyvengers.log" {
		t.Errorf("expected log file, got %s", cfg.Logging.File)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()

	// Should return default config, not error
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != DefaultName {
		t.Errorf("expected default name, got %s", cfg.Name)
	}
	if cfg.Data.File != DefaultDataFile {
		t.Errorf("expected default data file, got %s", cfg.Data.File)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml content`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if apperrors.AsCode(err) != apperrors.CodeConfigInvalid {
		t.Errorf("expected code %s, got %q", apperrors.CodeConfigInvalid, apperrors.AsCode(err))
	}
}

func TestLoadRequired_MissingFile(t *testing.T) {
	_, err := LoadRequired(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if apperrors.AsCode(err) != apperrors.CodeConfigInvalid {
		t.Errorf("expected code %s, got %q", apperrors.CodeConfigInvalid, apperrors.AsCode(err))
	}
}

func TestLoadRequired_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "data:\n  file: heroes.json\n")

	cfg, err := LoadRequired(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.File != "heroes.json" {
		t.Errorf("expected heroes.json, got %s", cfg.Data.File)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "name: minimal\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.File != DefaultDataFile {
		t.Errorf("expected default data file, got %s", cfg.Data.File)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("expected info/text defaults, got %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoad_EnvInterpolation(t *testing.T) {
	t.Setenv("PYV_TEST_DIR", "/data")
	t.Setenv("PYV_TEST_LEVEL", "warn")

	dir := t.TempDir()
	writeConfig(t, dir, `
data:
  file: ${env.PYV_TEST_DIR}/heroes.json
logging:
  level: ${PYV_TEST_LEVEL}
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.File != "/data/heroes.json" {
		t.Errorf("expected interpolated path, got %s", cfg.Data.File)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected interpolated level, got %s", cfg.Logging.Level)
	}
}

func TestInterpolateEnv_KeepsUnknown(t *testing.T) {
	got := interpolateEnv("path: ${env.PYV_SURELY_UNSET_VAR}")
	if got != "path: ${env.PYV_SURELY_UNSET_VAR}" {
		t.Errorf("unset variables should be kept verbatim, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"blank data file", func(c *Config) { c.Data.File = "  " }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
