// Package dbtest provides seeded in-memory SQLite databases for package tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tenanttheme/internal/config"
	"tenanttheme/internal/database"
)

// Config returns a sqlite configuration pointing at a fresh private in-memory database.
func Config() config.DatabaseConfig {
	return config.DatabaseConfig{
		Dialect: config.DialectSQLite,
		Name:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}
}

// New returns a migrated and seeded database that is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db := Empty(t)
	require.NoError(t, database.Seed(context.Background(), db, zerolog.Nop()))
	return db
}

// Empty returns a migrated database without seed rows.
func Empty(t testing.TB) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.Connect(ctx, Config(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db, zerolog.Nop()) })

	require.NoError(t, database.Migrate(ctx, db, zerolog.Nop()))
	return db
}

// Broken returns a handle whose pool is already closed, so every query fails.
func Broken(t testing.TB) *gorm.DB {
	t.Helper()

	db := New(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	return db
}
