// Package store persists the raw and edited entry tables in SQLite.
//
// Both tables are saved by full replacement inside one transaction, which
// matches the tool's single-session model: the in-memory tables are the
// source of truth while a session runs, and the database is the snapshot
// between sessions. Open takes a flock on a sidecar lock file so a second
// session cannot corrupt that snapshot.
//
// Load deliberately never fails hard: a broken database degrades to empty
// tables plus a diagnostic so a session can still start and re-import.
package store
