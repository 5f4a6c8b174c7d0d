package store_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"scoutbase/internal/entry"
	"scoutbase/internal/store"
	"scoutbase/internal/testsupport"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	raw := []entry.Raw{
		{Match: 5, Team: 200, Name: "Sam", StartTime: "1970-01-01 00:00:30", Board: "Comp", Data: "00ff", Comments: "hello"},
		{Match: 6, Team: 201, Name: "Pat", StartTime: "1970-01-01 00:01:00", Board: "Pit", Data: "", Comments: ""},
	}
	if err := st.SaveRaw(ctx, raw); err != nil {
		t.Fatalf("SaveRaw failed: %v", err)
	}

	idx := 0
	edited := []*entry.Row{
		{ID: 1, RawIndex: &idx, Match: 5, Team: 200, Name: "Sam", StartTime: "1970-01-01 00:00:30", Board: "Comp", Data: "00ff", Comments: "hello", Edited: entry.NeverEdited},
		{ID: 4, Match: 9, Team: 900, Name: "Alex", StartTime: "2026-03-14 09:00:00", Board: "Comp", Data: "", Comments: "manual", Edited: "2026-03-14 09:30:00"},
	}
	if err := st.SaveEdited(ctx, edited); err != nil {
		t.Fatalf("SaveEdited failed: %v", err)
	}

	loadedRaw, err := st.LoadRaw(ctx)
	if err != nil {
		t.Fatalf("LoadRaw failed: %v", err)
	}
	if len(loadedRaw) != 2 || loadedRaw[0] != raw[0] || loadedRaw[1] != raw[1] {
		t.Fatalf("raw round trip mismatch: %+v", loadedRaw)
	}

	loadedEdited, err := st.LoadEdited(ctx)
	if err != nil {
		t.Fatalf("LoadEdited failed: %v", err)
	}
	if len(loadedEdited) != 2 {
		t.Fatalf("loaded %d edited rows, want 2", len(loadedEdited))
	}
	if loadedEdited[0].ID != 1 || loadedEdited[0].RawIndex == nil || *loadedEdited[0].RawIndex != 0 {
		t.Fatalf("edited row 0 mismatch: %+v", loadedEdited[0])
	}
	if loadedEdited[1].ID != 4 || loadedEdited[1].RawIndex != nil {
		t.Fatalf("manual row mismatch: %+v", loadedEdited[1])
	}
	if loadedEdited[1].Edited != "2026-03-14 09:30:00" {
		t.Fatalf("edited timestamp mismatch: %q", loadedEdited[1].Edited)
	}
}

func TestSaveRawReplacesWholesale(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	first := []entry.Raw{{Match: 1, Team: 1, Name: "A", StartTime: "x", Board: "Comp", Data: "", Comments: ""}}
	if err := st.SaveRaw(ctx, first); err != nil {
		t.Fatalf("SaveRaw failed: %v", err)
	}
	second := []entry.Raw{
		{Match: 2, Team: 2, Name: "B", StartTime: "y", Board: "Comp", Data: "", Comments: ""},
		{Match: 3, Team: 3, Name: "C", StartTime: "z", Board: "Comp", Data: "", Comments: ""},
	}
	if err := st.SaveRaw(ctx, second); err != nil {
		t.Fatalf("SaveRaw failed: %v", err)
	}

	loaded, err := st.LoadRaw(ctx)
	if err != nil {
		t.Fatalf("LoadRaw failed: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Name != "B" {
		t.Fatalf("replace was not wholesale: %+v", loaded)
	}
}

func TestLoadDegradesInsteadOfFailing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tables := st.Load(ctx)
	if !tables.Degraded {
		t.Fatal("expected degraded load from a canceled context")
	}
	if tables.Err == nil {
		t.Fatal("degraded load must carry a diagnostic")
	}
	if len(tables.Raw) != 0 || len(tables.Edited) != 0 {
		t.Fatalf("degraded load must yield empty tables, got %d/%d", len(tables.Raw), len(tables.Edited))
	}
}

func TestSecondSessionIsRefused(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	_ = testsupport.MustOpenStore(t, cfg)

	if _, err := store.Open(cfg); !errors.Is(err, store.ErrSessionLocked) {
		t.Fatalf("expected ErrSessionLocked, got %v", err)
	}
}

func TestFreshReportsSchemaCreation(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !st.Fresh() {
		t.Fatal("first open must report a fresh database")
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	if reopened.Fresh() {
		t.Fatal("reopening an existing database must not report fresh")
	}
}

func TestRemoveResetsDatabase(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := st.SaveEdited(ctx, []*entry.Row{{ID: 7, Match: 1, Team: 10, Name: "A", StartTime: "s", Board: "Comp", Data: "", Comments: "", Edited: ""}}); err != nil {
		t.Fatalf("SaveEdited failed: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := st.Remove(); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(st.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("database file still present after Remove: %v", err)
	}

	fresh := testsupport.MustOpenStore(t, cfg)
	rows, err := fresh.LoadEdited(ctx)
	if err != nil {
		t.Fatalf("LoadEdited failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty table after reset, got %+v", rows)
	}
}

func TestReopenKeepsData(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := st.SaveEdited(ctx, []*entry.Row{{ID: 2, Match: 1, Team: 10, Name: "A", StartTime: "s", Board: "Comp", Data: "", Comments: "", Edited: ""}}); err != nil {
		t.Fatalf("SaveEdited failed: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	rows, err := reopened.LoadEdited(ctx)
	if err != nil {
		t.Fatalf("LoadEdited failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != 2 {
		t.Fatalf("data lost across reopen: %+v", rows)
	}
}
