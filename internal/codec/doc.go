// Package codec converts an entry's data token to and from typed values.
//
// A data token is a run of four-hex-digit chunks. Each chunk packs a field
// index in the high byte and a raw value in the low byte; the index selects
// a field type from the entry's board schema. Decode and Encode are exact
// inverses for any token Decode accepts, so editing round-trips without
// loss. An empty token is valid and decodes to no values, which is what a
// freshly appended entry carries.
package codec
