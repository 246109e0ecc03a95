package db

import (
	"github.com/sirupsen/logrus" // Structured logging

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library

	"finledger/internal/domain" // Domain models
)

// Migrate creates or updates the ledger schema: users, accounts (with the
// per-user name unique index), transactions (with the delete-restrict
// foreign key to accounts) and transfers.
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&domain.User{}, &domain.Account{}, &domain.Transaction{}, &domain.Transfer{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
