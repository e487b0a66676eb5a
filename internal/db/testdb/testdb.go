// Package testdb provides migrated in-memory sqlite databases for tests.
package testdb

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campusclubs/clubhub/internal/db"
)

// New opens a private in-memory database with every model migrated.
// A single connection keeps all statements on the same memory database.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Discard,
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), gdb), "failed to migrate test database")

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}
