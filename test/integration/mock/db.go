// Package mock provides shared test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var sharedDb *Db

// Db wraps a singleton in-memory sqlite database migrated with the full
// application schema. The single shared connection keeps the memory
// database alive for the whole suite; scenarios call Reset between runs.
type Db struct {
	DbConn *gorm.DB
}

// NewDb returns the shared in-memory test database, opening it on first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		sharedDb = open()
	})
	return sharedDb
}

func open() *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(fmt.Sprintf("failed to open sqlite: %v", err))
	}
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to open gorm: %v", err))
	}

	if err := db.Migrate(conn); err != nil {
		panic(fmt.Sprintf("failed to migrate schema: %v", err))
	}

	return &Db{DbConn: conn}
}

// Reset deletes all rows from every table, leaving the schema in place.
func (d *Db) Reset() error {
	models := []any{
		&model.SnapshotEntryModel{},
		&model.FixedExpenseModel{},
		&model.FixedIncomeModel{},
		&model.TransactionModel{},
		&model.CategoryModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.UserModel{},
	}
	for _, m := range models {
		if err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return fmt.Errorf("failed to clear table for %T: %w", m, err)
		}
	}
	return nil
}
