// Package reconcile joins keyed data from two sources.
//
// It has two halves that share one idea: a source of truth decides which
// keys exist, and everything else is matched against it.
//
// # Left join
//
// LeftJoin and Collapse are the generic core of the inventory tables. The
// catalog supplies the keys, the user record supplies values, and any catalog
// key the user has never touched gets the category default:
//
//	rows := reconcile.LeftJoin(catalogNames, record.Materials, 0)
//	// edit rows ...
//	record.Materials = reconcile.Collapse(rows)
//
// # Catalog sync
//
// PlanFor compares the catalog tables in the database with the catalog
// document kept in object storage. Both indices load concurrently, the union
// of keys is classified, and a Plan lists the actions needed to bring the
// database in line:
//
//   - insert_db: entity only present in the document
//   - delete_db: entity only present in the database (purge)
//   - sync_db: entity present in both with differing fields
//
// Apply executes a plan through a Mutator, but only when the caller both
// confirmed and disabled dry-run.
//
//	plan, err := reconcile.PlanFor(ctx, adapter, opts)
//	executed, err := reconcile.Apply(ctx, adapter, plan, opts)
package reconcile
