package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.FileName != "index.html" {
		t.Errorf("expected default file_name %q, got %q", "index.html", cfg.FileName)
	}
	if cfg.LogLevel != LogInfo {
		t.Errorf("expected default log_level %q, got %q", LogInfo, cfg.LogLevel)
	}
	if got, want := cfg.OutputPath(), filepath.Join("dist", "index.html"); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.landing.yml")

	original := DefaultConfig()
	original.OutputDir = "public"
	original.FileName = "home.html"
	original.LogLevel = LogDebug

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if *loaded != *original {
		t.Errorf("round-trip: got %+v, want %+v", *loaded, *original)
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("output_dir: site\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "site" {
		t.Errorf("output_dir: got %q, want %q", cfg.OutputDir, "site")
	}
	if cfg.FileName != "index.html" {
		t.Errorf("file_name should keep its default, got %q", cfg.FileName)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.OutputPath() != DefaultConfig().OutputPath() {
		t.Errorf("expected default output path, got %q", cfg.OutputPath())
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yml")
	if err := os.WriteFile(path, []byte("output_dir: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("LANDING_OUTPUT_DIR", "build")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "build" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "build")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty log level", func(c *Config) { c.LogLevel = "" }, false},
		{"nested output dir", func(c *Config) { c.OutputDir = "build/site" }, false},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"empty file name", func(c *Config) { c.FileName = "" }, true},
		{"file name with slash", func(c *Config) { c.FileName = "sub/index.html" }, true},
		{"file name with backslash", func(c *Config) { c.FileName = `sub\index.html` }, true},
		{"unknown log level", func(c *Config) { c.LogLevel = "trace" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
