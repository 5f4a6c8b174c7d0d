package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"scoutbase/internal/board"
)

const compBoardTOML = `
id = 1
name = "Comp"

[[fields]]
name = "Auto line"
kind = "boolean"

[[fields]]
name = "Tele intake"
kind = "timer"

[[fields]]
name = "Driver skill"
kind = "rating"

[[fields]]
name = "Climb"
kind = "count"
`

const pitBoardTOML = `
id = 2
name = "Pit"

[[fields]]
name = "Drivetrain"
kind = "rating"

[[fields]]
name = "Vision"
kind = "boolean"
`

// SeedBoardDir writes the standard test board definitions ("Comp" id 1,
// "Pit" id 2) into a fresh directory and returns its path.
func SeedBoardDir(t testing.TB) string {
	t.Helper()

	dir := t.TempDir()
	WriteBoardFile(t, dir, "comp.toml", compBoardTOML)
	WriteBoardFile(t, dir, "pit.toml", pitBoardTOML)
	return dir
}

// WriteBoardFile writes one board definition into dir.
func WriteBoardFile(t testing.TB, dir, name, contents string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatalf("write board file %s: %v", name, err)
	}
}

// NewBoardFinder loads a Finder over the standard test boards.
func NewBoardFinder(t testing.TB) *board.Finder {
	t.Helper()

	finder, err := board.NewFinder(SeedBoardDir(t))
	if err != nil {
		t.Fatalf("board.NewFinder: %v", err)
	}
	return finder
}
