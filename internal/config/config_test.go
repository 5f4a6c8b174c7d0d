package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scoutbase/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for a missing file")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.Paths.Database) {
		t.Fatalf("database path not absolute: %q", cfg.Paths.Database)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[paths]
database = "` + filepath.Join(dir, "data.db") + `"
source_dir = "` + filepath.Join(dir, "scans") + `"

[scouting]
default_board = "  Comp  "

[logging]
format = "JSON"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Scouting.DefaultBoard != "Comp" {
		t.Fatalf("DefaultBoard = %q, want trimmed value", cfg.Scouting.DefaultBoard)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("Format = %q, want lowercased json", cfg.Logging.Format)
	}
	if cfg.Paths.BoardDir == "" || !filepath.IsAbs(cfg.Paths.BoardDir) {
		t.Fatalf("BoardDir not defaulted/expanded: %q", cfg.Paths.BoardDir)
	}
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging.format error, got %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Database = filepath.Join(dir, "db", "scoutbase.db")
	cfg.Paths.SourceDir = filepath.Join(dir, "scans")
	cfg.Paths.BoardDir = filepath.Join(dir, "boards")
	cfg.Paths.ExportDir = filepath.Join(dir, "exports")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, p := range []string{filepath.Join(dir, "db"), cfg.Paths.SourceDir, cfg.Paths.BoardDir, cfg.Paths.ExportDir, cfg.Paths.LogDir} {
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			t.Fatalf("directory %q missing after EnsureDirectories", p)
		}
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("sample config does not load: exists=%v err=%v", exists, err)
	}
}
