// Package importer turns scanned source files into raw entries.
//
// A scan walks the source directory recursively, reads every .csv file
// (extension matched case-insensitively), strips each line's trailing comma
// column, and keeps lines matching the entry grammar:
//
//	<match:1-3 digits>_<team:1-4 digits>_<name>_<starttime hex8>_<board hex8>_<data hex4*>_<comments>
//
// Lines that fail the grammar are expected scanner noise and are dropped
// silently. Surviving lines are deduplicated by exact string equality in
// first-seen order before parsing, so re-scanning an unchanged source tree
// reproduces the same batch in the same order (the walk itself is
// lexicographic). An unknown board id, by contrast, means the scanned fleet
// and the local board definitions disagree; that aborts the whole run.
package importer
