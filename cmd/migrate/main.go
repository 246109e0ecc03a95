package main

import (
	"finledger/internal/config" // Configuration
	"finledger/internal/db"     // Schema migration
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Create or update the ledger schema
}
