// Package entry holds the row models for scouting records and the decoded
// Entry projection used by review and display code.
package entry

import (
	"fmt"

	"scoutbase/internal/board"
	"scoutbase/internal/codec"
)

// NeverEdited is the Edited marker for a row no one has touched.
const NeverEdited = ""

// Raw is an entry exactly as imported from scanned source files. Raw rows
// are immutable; each import run replaces the whole set.
type Raw struct {
	Match     int
	Team      int
	Name      string
	StartTime string
	Board     string
	Data      string
	Comments  string
}

// Row is one row of the mutable edited overlay table.
type Row struct {
	// ID is a stable identifier assigned once at creation. It never changes
	// and is never reused, so it stays valid across deletions elsewhere in
	// the table.
	ID int64
	// RawIndex points at the originating raw entry's batch position. Nil for
	// manually appended rows, which the reconciliation merge never touches.
	RawIndex  *int
	Match     int
	Team      int
	Name      string
	StartTime string
	Board     string
	Data      string
	Comments  string
	// Edited is the display timestamp of the last mutation, or NeverEdited.
	Edited string
}

// FromRaw builds a Row copying all fields of a raw entry.
func FromRaw(raw Raw, rawIndex int) Row {
	idx := rawIndex
	return Row{
		RawIndex:  &idx,
		Match:     raw.Match,
		Team:      raw.Team,
		Name:      raw.Name,
		StartTime: raw.StartTime,
		Board:     raw.Board,
		Data:      raw.Data,
		Comments:  raw.Comments,
		Edited:    NeverEdited,
	}
}

// Field is one decoded data slot of an entry: its schema type, the current
// value, the value as originally decoded, and whether the editor asked to
// revert to it.
type Field struct {
	Type     board.FieldType
	Value    int
	Prior    int
	Reverted bool
}

// Bool interprets the current value as a boolean observation.
func (f Field) Bool() bool { return f.Value != 0 }

// Entry is the decoded view of one record. It is a projection: it does not
// own its row, only remembers the row id so results can be written back.
type Entry struct {
	RowID     int64
	Match     int
	Team      int
	Name      string
	StartTime string
	Comments  string
	Board     *board.Board
	Fields    []Field
}

// FromRow decodes an edited row against its board schema.
func FromRow(row *Row, b *board.Board) (*Entry, error) {
	e, err := decode(row.Match, row.Team, row.Name, row.StartTime, row.Comments, row.Data, b)
	if err != nil {
		return nil, err
	}
	e.RowID = row.ID
	return e, nil
}

// DecodeRaw decodes a raw entry against its board schema. The projection
// carries no row id because raw entries are not addressable for write-back.
func DecodeRaw(raw Raw, b *board.Board) (*Entry, error) {
	return decode(raw.Match, raw.Team, raw.Name, raw.StartTime, raw.Comments, raw.Data, b)
}

func decode(match, team int, name, startTime, comments, data string, b *board.Board) (*Entry, error) {
	values, err := codec.Decode(data, b)
	if err != nil {
		return nil, fmt.Errorf("entry %d/%d/%s: %w", match, team, name, err)
	}

	fields := make([]Field, len(values))
	for i, value := range values {
		fields[i] = Field{
			Type:  value.Type,
			Value: value.Raw,
			Prior: value.Raw,
		}
	}

	return &Entry{
		Match:     match,
		Team:      team,
		Name:      name,
		StartTime: startTime,
		Comments:  comments,
		Board:     b,
		Fields:    fields,
	}, nil
}

// EncodeData serializes the field list back into a data token. Reverted
// fields encode their prior value instead of the current one.
func (e *Entry) EncodeData() (string, error) {
	values := make([]codec.Value, len(e.Fields))
	for i, field := range e.Fields {
		index, ok := e.Board.FieldIndex(field.Type.Name)
		if !ok {
			return "", fmt.Errorf("encode entry: field %q is not part of board %q", field.Type.Name, e.Board.Name())
		}
		raw := field.Value
		if field.Reverted {
			raw = field.Prior
		}
		values[i] = codec.Value{Index: index, Type: field.Type, Raw: raw}
	}
	return codec.Encode(values, e.Board)
}
