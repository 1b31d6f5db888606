// Package inventory keeps each user's ownership record: characters owned,
// material and furnishing quantities, and which characters claimed which
// gift sets.
//
// # Tables
//
// Reads never expose the raw record. Reconcile left-joins the record onto
// the catalog so every catalog entry has exactly one row, defaulting to
// false or 0. Stale names the catalog dropped disappear from the view.
// Gift set rows exist only for the characters a set lists.
//
// # Writes
//
// Each category is saved on its own. The submitted rows are validated
// (catalog names with "did you mean" suggestions, non-negative quantities),
// collapsed back into record shape and written to one JSON column while the
// version counter is bumped. Writes are last-write-wins unless the caller
// sends the version it read, in which case a concurrent change yields
// ErrVersionConflict.
package inventory
