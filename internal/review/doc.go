// Package review drives one verification session over the entry tables.
//
// A Manager owns the board registry, the persisted store, the source
// scanner, and the in-memory edited table. It exposes the full session
// lifecycle: load (with degraded fallback when the database is unreadable),
// update (rescan sources and reconcile), entry read and write-back, query
// and navigation, append and removal, save, and export.
//
// Everything is synchronous and single-session; the store's file lock keeps
// a second process out.
package review
