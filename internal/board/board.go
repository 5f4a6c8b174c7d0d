package board

import (
	"fmt"
	"strings"
)

// Kind classifies how a field's raw encoded value should be interpreted.
type Kind string

const (
	// KindBoolean is a yes/no observation such as "crossed the auto line".
	KindBoolean Kind = "boolean"
	// KindRating is a small ordinal score assigned by the scout.
	KindRating Kind = "rating"
	// KindCount is an occurrence counter.
	KindCount Kind = "count"
	// KindTimer is a match-clock second count for a timestamped action.
	KindTimer Kind = "timer"
)

var knownKinds = map[Kind]struct{}{
	KindBoolean: {},
	KindRating:  {},
	KindCount:   {},
	KindTimer:   {},
}

// FieldType is one named, typed slot in a board schema.
type FieldType struct {
	Name string `toml:"name"`
	Kind Kind   `toml:"kind"`
}

// Board is the immutable schema for one scouting sheet.
type Board struct {
	id         int
	name       string
	fields     []FieldType
	fieldIndex map[string]int
}

// ID returns the numeric identifier embedded in scanned data tokens.
func (b *Board) ID() int { return b.id }

// Name returns the canonical board name.
func (b *Board) Name() string { return b.name }

// Fields returns the ordered field schema. The returned slice must not be
// mutated.
func (b *Board) Fields() []FieldType { return b.fields }

// FieldIndex resolves a field name to its position in the schema.
func (b *Board) FieldIndex(name string) (int, bool) {
	idx, ok := b.fieldIndex[name]
	return idx, ok
}

func newBoard(id int, name string, fields []FieldType) (*Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("board %d: name is required", id)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("board %q: at least one field is required", name)
	}
	if len(fields) > maxFields {
		return nil, fmt.Errorf("board %q: %d fields exceeds the %d-field encoding limit", name, len(fields), maxFields)
	}

	index := make(map[string]int, len(fields))
	for i, field := range fields {
		trimmed := strings.TrimSpace(field.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("board %q: field %d has no name", name, i)
		}
		if _, ok := knownKinds[field.Kind]; !ok {
			return nil, fmt.Errorf("board %q: field %q has unknown kind %q", name, trimmed, field.Kind)
		}
		if _, dup := index[trimmed]; dup {
			return nil, fmt.Errorf("board %q: duplicate field name %q", name, trimmed)
		}
		fields[i].Name = trimmed
		index[trimmed] = i
	}

	return &Board{id: id, name: name, fields: fields, fieldIndex: index}, nil
}

// maxFields is the largest schema the one-byte field index in the data token
// encoding can address.
const maxFields = 256
