// Package logging builds the slog logger used across scoutbase.
//
// Two formats are supported: "console", a compact human-readable handler
// for interactive use, and "json" for captured sessions. Output goes to
// stdout and, when a log directory is configured, to a session log file as
// well.
package logging
