package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPathMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if got := Default(); cfg.Theme != got.Theme || cfg.SplitRatio != got.SplitRatio {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromPathOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{"extractor_command":["python3","extract-inputs.py"],"theme":"dracula","sync_scroll":false,"split_ratio":0.6,"show_line_numbers":false}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if len(cfg.ExtractorCommand) != 2 || cfg.ExtractorCommand[0] != "python3" {
		t.Fatalf("extractor command = %v", cfg.ExtractorCommand)
	}
	if cfg.Theme != "dracula" {
		t.Fatalf("theme = %q", cfg.Theme)
	}
	if cfg.SyncScroll {
		t.Fatalf("sync_scroll should be false")
	}
	if cfg.SplitRatio != 0.6 {
		t.Fatalf("split_ratio = %v", cfg.SplitRatio)
	}
	if cfg.ShowLineNumbers {
		t.Fatalf("show_line_numbers should be false")
	}
}

func TestLoadFromPathPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"theme":"github"}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.Theme != "github" {
		t.Fatalf("theme = %q", cfg.Theme)
	}
	if !cfg.SyncScroll || cfg.SplitRatio != 0.5 {
		t.Fatalf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadFromPathRejectsBadRatio(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"split_ratio":0.05}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected error for out-of-range ratio")
	}
}

func TestLoadFromPathRejectsEmptyExtractor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"extractor_command":[]}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected error for empty extractor command")
	}
}

func TestDefaultPathUsesXDGConfigHome(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}

	want := filepath.Join(xdg, "nbdiff", "config.json")
	if got != want {
		t.Fatalf("DefaultPath()=%q want %q", got, want)
	}
}
