// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL, PostgreSQL or SQLite
// connections based on the application's configuration. SQLite is used for local
// runs and tests; the inventory and catalog stores only rely on portable GORM calls
// and JSON columns.
//
// # Schema Inspection
//
// GetTableColumns returns the live column list of a table. The server integrity check
// compares it against the GORM models of the catalog, inventory and account stores.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "inventories")
package database
