package database

import (
	"fmt"
	"testing"
	"time"

	"household-ledger/internal/calendar"
	"household-ledger/internal/config"
	"household-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"transactions",
	"named_periods",
	"blood_pressure_records",
}

// SetupTestDB opens a migrated in-memory sqlite database
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// each pooled connection to :memory: is a separate database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestTransaction inserts a transaction dated at midnight UTC of the given day
func CreateTestTransaction(t *testing.T, db *DB, kind models.TransactionKind, date time.Time, amount float64, inflow bool, details string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Kind:    kind,
		Date:    date,
		Amount:  decimal.NewFromFloat(amount),
		Details: details,
	}
	if kind == models.KindCredit {
		tx.IsCashback = inflow
	} else {
		tx.IsIncome = inflow
	}

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return tx
}

// CreateTestNamedPeriod inserts a named period for the given month and CE year
func CreateTestNamedPeriod(t *testing.T, db *DB, month calendar.Month, year int, start, end time.Time) *models.NamedPeriod {
	t.Helper()

	period := &models.NamedPeriod{
		Year:      year,
		Month:     month,
		StartDate: start,
		EndDate:   end,
	}

	if err := db.Create(period).Error; err != nil {
		t.Fatalf("failed to create test named period: %v", err)
	}

	return period
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
