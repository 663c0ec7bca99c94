package testutils

import (
	"fmt"
	"strings"
	"testing"

	"pc-build-tracker-backend/internal/database"

	"gorm.io/gorm"
)

// NewSQLiteDB opens a private in-memory SQLite database with the full schema.
// Each test gets its own database, closed when the test ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	db, err := database.Initialize(dsn, &database.Options{Driver: database.DriverSQLite})
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
