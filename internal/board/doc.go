// Package board loads board definitions and resolves them by name or id.
//
// A board is the schema for one kind of scouting sheet: an ordered list of
// typed fields that determines how an entry's encoded data token is
// interpreted. Definitions are TOML documents in a configured directory; the
// Finder reads the whole directory once and answers lookups from memory.
//
// Lookups that miss return ErrUnknownBoard. Callers decide how fatal that is:
// the importer aborts the whole run on an unknown board id, while display
// code may simply report the error.
package board
