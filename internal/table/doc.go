// Package table is the in-memory edited overlay table: an ordered
// collection of entry rows with indexed lookups, the reconciliation merge
// that folds freshly imported raw entries into it, and the filter, search,
// and navigation operations the review surface is built on.
//
// Row identity is a stable int64 assigned at insertion and never reused.
// Deleting a row does not renumber the survivors, so identities captured in
// a View stay meaningful for as long as their rows exist.
package table
