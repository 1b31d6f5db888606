// Package catalog owns the static reference data: characters, materials,
// furnishings and gift sets.
//
// The catalog lives in four database tables and is mirrored by a catalog
// document (JSON or YAML) in object storage. The document is the source of
// truth; "catalog sync" reconciles the tables against it through the
// reconcile package. Malformed gift sets in the document are reported and
// never reach the database.
//
// Readers use Service.Snapshot, which caches the whole catalog through the
// cache package. The requirements calculation fetches gift set definitions
// with Service.FindSets instead, so it always sees the current tables.
package catalog
