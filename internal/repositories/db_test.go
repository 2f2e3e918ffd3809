package repositories_test

import (
	"fmt"
	"strings"
	"testing"

	"bookstore/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a per-test in-memory SQLite database with the
// full schema migrated. cache=shared keeps the database alive across
// GORM's pooled connections; the test name keeps tests isolated from
// each other.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Book{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.ContactMessage{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
