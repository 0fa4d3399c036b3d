package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/infra/db"
)

// newTestDB opens a private in-memory sqlite database, migrated with the
// full schema. MaxOpenConns(1) keeps every query on the same connection
// so the memory database is not dropped between statements.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	gormDB, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return gormDB
}

// seedCategory inserts a category and returns it.
func seedCategory(t *testing.T, gormDB *gorm.DB, userID uuid.UUID, name string) *entity.Category {
	t.Helper()

	category := entity.NewCategory(userID, name)
	if err := NewCategoryRepository(gormDB).Create(context.Background(), category); err != nil {
		t.Fatalf("failed to seed category %s: %v", name, err)
	}
	return category
}
