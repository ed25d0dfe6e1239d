// Package testdb opens a migrated in-memory sqlite database for tests.
package testdb

import (
	"testing"

	dbinfra "esep-backend/internal/infrastructure/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open returns a fresh schema per call. The pool is pinned to one
// connection because each sqlite :memory: connection is its own database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(dbinfra.Models()...); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
