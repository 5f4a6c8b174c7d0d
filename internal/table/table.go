package table

import (
	"sort"

	"scoutbase/internal/entry"
)

// Key is the (match, team, name) triple used for exact-match lookup.
type Key struct {
	Match int
	Team  int
	Name  string
}

// Table is the mutable edited overlay table. It is not safe for concurrent
// use; the tool assumes one exclusive session per database.
type Table struct {
	rows   []*entry.Row
	byID   map[int64]*entry.Row
	byKey  map[Key][]int64
	nextID int64
}

// New builds a table over previously persisted rows. Row ids are taken as
// loaded; the next assigned id continues past the largest seen.
func New(rows []*entry.Row) *Table {
	t := &Table{
		byID:   make(map[int64]*entry.Row, len(rows)),
		byKey:  make(map[Key][]int64, len(rows)),
		nextID: 1,
	}
	for _, row := range rows {
		t.rows = append(t.rows, row)
		t.byID[row.ID] = row
		key := keyOf(row)
		t.byKey[key] = append(t.byKey[key], row.ID)
		if row.ID >= t.nextID {
			t.nextID = row.ID + 1
		}
	}
	return t
}

func keyOf(row *entry.Row) Key {
	return Key{Match: row.Match, Team: row.Team, Name: row.Name}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns the rows in insertion order. The slice is shared; callers
// must not reorder or truncate it.
func (t *Table) Rows() []*entry.Row { return t.rows }

// Get returns the row with the given identity, or nil.
func (t *Table) Get(id int64) *entry.Row {
	return t.byID[id]
}

// Insert assigns the next stable identity to row, appends it, and returns
// the stored row.
func (t *Table) Insert(row entry.Row) *entry.Row {
	row.ID = t.nextID
	t.nextID++

	stored := &row
	t.rows = append(t.rows, stored)
	t.byID[stored.ID] = stored
	key := keyOf(stored)
	t.byKey[key] = append(t.byKey[key], stored.ID)
	return stored
}

// ExactMatch returns the first row whose (match, team, name) equals the
// arguments exactly, or nil.
func (t *Table) ExactMatch(match, team int, name string) *entry.Row {
	ids := t.byKey[Key{Match: match, Team: team, Name: name}]
	if len(ids) == 0 {
		return nil
	}
	return t.byID[ids[0]]
}

// Remove deletes the row at id, but only when its (match, team, name)
// fields still equal the supplied values. The guard protects against stale
// identities captured before a concurrent mutation; a mismatch is a no-op.
// It reports whether a row was removed.
func (t *Table) Remove(match, team int, name string, id int64) bool {
	row := t.byID[id]
	if row == nil {
		return false
	}
	if row.Match != match || row.Team != team || row.Name != name {
		return false
	}

	delete(t.byID, id)
	t.dropKey(keyOf(row), id)
	for i, r := range t.rows {
		if r.ID == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			break
		}
	}
	return true
}

func (t *Table) dropKey(key Key, id int64) {
	ids := t.byKey[key]
	for i, candidate := range ids {
		if candidate == id {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(t.byKey, key)
	} else {
		t.byKey[key] = ids
	}
}

// Touch updates a row's key indexes after its identity fields changed.
// Callers that mutate Match, Team, or Name through a write-back must call
// Touch with the key the row had before the mutation.
func (t *Table) Touch(row *entry.Row, before Key) {
	after := keyOf(row)
	if before == after {
		return
	}
	t.dropKey(before, row.ID)
	t.byKey[after] = append(t.byKey[after], row.ID)
	sort.Slice(t.byKey[after], func(i, j int) bool { return t.byKey[after][i] < t.byKey[after][j] })
}

// Merge reconciles a freshly imported raw batch into the table. Every raw
// index not already referenced by some row gains exactly one new row, with
// all fields copied and Edited blank. Existing rows, including manually
// appended ones with no raw origin, are never modified, so running Merge
// twice with the same batch adds nothing the second time. Returns the
// number of rows appended.
func (t *Table) Merge(raw []entry.Raw) int {
	referenced := make(map[int]struct{}, len(t.rows))
	for _, row := range t.rows {
		if row.RawIndex != nil {
			referenced[*row.RawIndex] = struct{}{}
		}
	}

	appended := 0
	for i, r := range raw {
		if _, ok := referenced[i]; ok {
			continue
		}
		t.Insert(entry.FromRaw(r, i))
		appended++
	}
	return appended
}
