// Package dbtest opens throwaway databases for tests.
package dbtest

import (
	"testing"

	"furnishing-helper/core/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLite opens an in-memory SQLite database, migrates the given models
// and closes it when the test ends.
func NewSQLite(t testing.TB, migrate ...any) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	if len(migrate) > 0 {
		require.NoError(t, db.AutoMigrate(migrate...))
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
