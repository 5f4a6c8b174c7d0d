package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"scoutbase/internal/board"
)

// ErrDecode indicates a data token that cannot be interpreted against its
// board schema. It signals data or schema corruption, so callers must not
// swallow it silently.
var ErrDecode = errors.New("decode data token")

// chunkLen is the width of one encoded value in hex digits.
const chunkLen = 4

// maxRaw is the largest raw value one chunk can carry.
const maxRaw = 0xff

// Value is one decoded slot of a data token.
type Value struct {
	// Index is the field's position in the board schema.
	Index int
	// Type is the schema field the chunk addressed.
	Type board.FieldType
	// Raw is the encoded value byte. Interpretation depends on Type.Kind:
	// nonzero means true for booleans, otherwise it is a plain count,
	// rating, or match-clock second.
	Raw int
}

// Bool interprets the raw value as a boolean observation.
func (v Value) Bool() bool { return v.Raw != 0 }

// Decode unpacks a data token against a board schema. The empty token
// decodes to an empty value list.
func Decode(token string, b *board.Board) ([]Value, error) {
	if len(token)%chunkLen != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrDecode, len(token), chunkLen)
	}
	if token != strings.ToLower(token) {
		return nil, fmt.Errorf("%w: token %q contains uppercase digits", ErrDecode, token)
	}

	fields := b.Fields()
	values := make([]Value, 0, len(token)/chunkLen)
	for pos := 0; pos < len(token); pos += chunkLen {
		chunk := token[pos : pos+chunkLen]
		packed, err := strconv.ParseUint(chunk, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: chunk %q at offset %d: %v", ErrDecode, chunk, pos, err)
		}

		index := int(packed >> 8)
		if index >= len(fields) {
			return nil, fmt.Errorf("%w: chunk %q at offset %d addresses field %d of a %d-field board %q",
				ErrDecode, chunk, pos, index, len(fields), b.Name())
		}

		values = append(values, Value{
			Index: index,
			Type:  fields[index],
			Raw:   int(packed & maxRaw),
		})
	}

	return values, nil
}

// Encode packs typed values back into a data token. It is the inverse of
// Decode: encoding a decoded token reproduces the original string.
func Encode(values []Value, b *board.Board) (string, error) {
	fields := b.Fields()

	var sb strings.Builder
	sb.Grow(len(values) * chunkLen)
	for i, value := range values {
		if value.Index < 0 || value.Index >= len(fields) {
			return "", fmt.Errorf("encode data token: value %d addresses field %d of a %d-field board %q",
				i, value.Index, len(fields), b.Name())
		}
		if value.Raw < 0 || value.Raw > maxRaw {
			return "", fmt.Errorf("encode data token: value %d for field %q is out of range: %d",
				i, fields[value.Index].Name, value.Raw)
		}
		fmt.Fprintf(&sb, "%02x%02x", value.Index, value.Raw)
	}

	return sb.String(), nil
}
