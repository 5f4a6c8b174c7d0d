// Package testsupport provides helpers shared by package tests: temp
// configs, seeded board directories, and store lifecycle management.
package testsupport

import (
	"path/filepath"
	"testing"

	"scoutbase/internal/config"
)

// NewConfig returns a config rooted in a fresh temp directory, with the
// standard test boards seeded into its board directory.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Database = filepath.Join(base, "scoutbase.db")
	cfg.Paths.SourceDir = filepath.Join(base, "scans")
	cfg.Paths.BoardDir = SeedBoardDir(t)
	cfg.Paths.ExportDir = filepath.Join(base, "exports")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	return &cfg
}
