package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"finledger/internal/domain"
)

// newTestDB opens an isolated in-memory database with the full ledger
// schema. Foreign keys and error translation are on so constraint
// violations behave the way they do against the production store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // An in-memory SQLite database exists per connection
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Account{}, &domain.Transaction{}, &domain.Transfer{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *domain.User {
	t.Helper()
	user := domain.User{Name: name, Email: email, Password: "irrelevant-hash"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedAccount(t *testing.T, db *gorm.DB, userID uint, name string) *domain.Account {
	t.Helper()
	acc := domain.Account{Name: name, UserID: userID}
	require.NoError(t, db.Create(&acc).Error)
	return &acc
}

func amt(f float64) *domain.Amount {
	a := domain.NewAmount(f)
	return &a
}

func someDate() *time.Time {
	d := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	return &d
}
