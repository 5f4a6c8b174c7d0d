package store

import (
	"context"
	"database/sql"
	"fmt"

	"scoutbase/internal/entry"
)

// Tables is the result of loading both persisted tables. Degraded is set
// when the load failed and empty tables were substituted; Err then carries
// the diagnostic the caller must report.
type Tables struct {
	Raw      []entry.Raw
	Edited   []*entry.Row
	Degraded bool
	Err      error
}

// Load reads both tables. It never fails hard: any error degrades to empty
// tables so a session can start and rebuild from source files.
func (s *Store) Load(ctx context.Context) Tables {
	raw, err := s.LoadRaw(ctx)
	if err != nil {
		return Tables{Degraded: true, Err: err}
	}
	edited, err := s.LoadEdited(ctx)
	if err != nil {
		return Tables{Degraded: true, Err: err}
	}
	return Tables{Raw: raw, Edited: edited}
}

// LoadRaw reads the raw entry table in index order.
func (s *Store) LoadRaw(ctx context.Context) ([]entry.Raw, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT match, team, name, start_time, board, data, comments
         FROM RAW_ENTRIES ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("load raw entries: %w", err)
	}
	defer rows.Close()

	var out []entry.Raw
	for rows.Next() {
		var r entry.Raw
		if err := rows.Scan(&r.Match, &r.Team, &r.Name, &r.StartTime, &r.Board, &r.Data, &r.Comments); err != nil {
			return nil, fmt.Errorf("scan raw entry: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate raw entries: %w", err)
	}
	return out, nil
}

// LoadEdited reads the edited overlay table in identity order.
func (s *Store) LoadEdited(ctx context.Context) ([]*entry.Row, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, raw_index, match, team, name, start_time, board, data, comments, edited
         FROM EDITED_ENTRIES ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load edited entries: %w", err)
	}
	defer rows.Close()

	var out []*entry.Row
	for rows.Next() {
		var row entry.Row
		var rawIndex sql.NullInt64
		if err := rows.Scan(&row.ID, &rawIndex, &row.Match, &row.Team, &row.Name,
			&row.StartTime, &row.Board, &row.Data, &row.Comments, &row.Edited); err != nil {
			return nil, fmt.Errorf("scan edited entry: %w", err)
		}
		if rawIndex.Valid {
			idx := int(rawIndex.Int64)
			row.RawIndex = &idx
		}
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate edited entries: %w", err)
	}
	return out, nil
}

// SaveRaw replaces the raw entry table with the given batch. The batch
// position becomes the persisted index.
func (s *Store) SaveRaw(ctx context.Context, raw []entry.Raw) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin raw save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM RAW_ENTRIES"); err != nil {
		return fmt.Errorf("clear raw entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO RAW_ENTRIES (idx, match, team, name, start_time, board, data, comments)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare raw insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range raw {
		if _, err := stmt.ExecContext(ctx, i, r.Match, r.Team, r.Name, r.StartTime, r.Board, r.Data, r.Comments); err != nil {
			return fmt.Errorf("insert raw entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit raw save: %w", err)
	}
	return nil
}

// SaveEdited replaces the edited overlay table, preserving row identities.
func (s *Store) SaveEdited(ctx context.Context, rows []*entry.Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin edited save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM EDITED_ENTRIES"); err != nil {
		return fmt.Errorf("clear edited entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO EDITED_ENTRIES (id, raw_index, match, team, name, start_time, board, data, comments, edited)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare edited insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		var rawIndex any
		if row.RawIndex != nil {
			rawIndex = *row.RawIndex
		}
		if _, err := stmt.ExecContext(ctx, row.ID, rawIndex, row.Match, row.Team, row.Name,
			row.StartTime, row.Board, row.Data, row.Comments, row.Edited); err != nil {
			return fmt.Errorf("insert edited entry %d: %w", row.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit edited save: %w", err)
	}
	return nil
}
