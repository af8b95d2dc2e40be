// Package databasetest provides throwaway SQLite databases for tests.
package databasetest

import (
	"testing"

	"todo-backend/pkg/database"
	"todo-backend/pkg/logger"

	"gorm.io/gorm"
)

// New opens a private in-memory database, migrates models into it and closes
// it when the test ends.
func New(t testing.TB, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteConnection(":memory:", logger.Nop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db, models...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
