package database

import (
	"fmt"
	"log"

	"backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection opens a connection pool for the configured driver and runs
// the automatic migrations. The driver is "postgres" in deployment; "sqlite"
// keeps local development and the test suite free of external services.
func NewConnection(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	case "sqlite":
		// For SQLite the DSN is the database file path (or :memory:)
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}

// Migrate creates or updates one table per resource collection
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.Chantier{},
		&model.Document{},
		&model.FicheSDB{},
		&model.CalculPAC{},
	)
}
