package entry_test

import (
	"errors"
	"testing"

	"scoutbase/internal/board"
	"scoutbase/internal/codec"
	"scoutbase/internal/entry"
	"scoutbase/internal/testsupport"
)

func compBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := testsupport.NewBoardFinder(t).GetBoardByName("Comp")
	if err != nil {
		t.Fatalf("GetBoardByName: %v", err)
	}
	return b
}

func TestFromRowDecodesFields(t *testing.T) {
	b := compBoard(t)
	row := &entry.Row{
		ID:        7,
		Match:     5,
		Team:      200,
		Name:      "Sam",
		StartTime: "2026-03-14 09:00:00",
		Board:     "Comp",
		Data:      "0001012c",
		Comments:  "solid run",
	}

	e, err := entry.FromRow(row, b)
	if err != nil {
		t.Fatalf("FromRow failed: %v", err)
	}
	if e.RowID != 7 || e.Match != 5 || e.Team != 200 || e.Name != "Sam" {
		t.Fatalf("unexpected projection: %+v", e)
	}
	if len(e.Fields) != 2 {
		t.Fatalf("decoded %d fields, want 2", len(e.Fields))
	}
	if !e.Fields[0].Bool() || e.Fields[0].Type.Name != "Auto line" {
		t.Fatalf("field 0 = %+v", e.Fields[0])
	}
	if e.Fields[1].Value != 0x2c || e.Fields[1].Prior != 0x2c {
		t.Fatalf("field 1 = %+v", e.Fields[1])
	}
}

func TestFromRowPropagatesDecodeError(t *testing.T) {
	b := compBoard(t)
	row := &entry.Row{ID: 1, Data: "xyz"}

	if _, err := entry.FromRow(row, b); !errors.Is(err, codec.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestEncodeDataWritesCurrentValues(t *testing.T) {
	b := compBoard(t)
	row := &entry.Row{ID: 1, Data: "0001012c"}

	e, err := entry.FromRow(row, b)
	if err != nil {
		t.Fatalf("FromRow failed: %v", err)
	}

	e.Fields[1].Value = 0x30
	encoded, err := e.EncodeData()
	if err != nil {
		t.Fatalf("EncodeData failed: %v", err)
	}
	if encoded != "00010130" {
		t.Fatalf("EncodeData = %q", encoded)
	}
}

func TestEncodeDataRevertRestoresPrior(t *testing.T) {
	b := compBoard(t)
	row := &entry.Row{ID: 1, Data: "012c"}

	e, err := entry.FromRow(row, b)
	if err != nil {
		t.Fatalf("FromRow failed: %v", err)
	}

	e.Fields[0].Value = 0x99
	e.Fields[0].Reverted = true

	encoded, err := e.EncodeData()
	if err != nil {
		t.Fatalf("EncodeData failed: %v", err)
	}
	if encoded != "012c" {
		t.Fatalf("reverted encode = %q, want original token", encoded)
	}
}

func TestFromRawCopiesAllFields(t *testing.T) {
	raw := entry.Raw{
		Match:     5,
		Team:      200,
		Name:      "Sam",
		StartTime: "1970-01-01 00:00:30",
		Board:     "Comp",
		Data:      "00ff",
		Comments:  "hello",
	}

	row := entry.FromRaw(raw, 3)
	if row.RawIndex == nil || *row.RawIndex != 3 {
		t.Fatalf("RawIndex = %v", row.RawIndex)
	}
	if row.Edited != entry.NeverEdited {
		t.Fatalf("Edited = %q, want never-edited marker", row.Edited)
	}
	if row.Match != raw.Match || row.Team != raw.Team || row.Name != raw.Name ||
		row.StartTime != raw.StartTime || row.Board != raw.Board ||
		row.Data != raw.Data || row.Comments != raw.Comments {
		t.Fatalf("row fields diverge from raw: %+v", row)
	}
}
