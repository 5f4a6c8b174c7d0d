// Package main hosts the scoutbase CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the whole review workflow: importing
// scanned source files, listing and searching the edited table, inspecting
// and stepping through decoded entries, manual append and guarded removal,
// exports, and board/configuration scaffolding. It centralizes configuration
// resolution, session locking, and structured logging setup so subcommands
// can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
