package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/connecthire/connecthire-server/internal/models"
)

// Connect opens the postgres connection and migrates the schema. The caller
// owns the handle; nothing in this package keeps global state.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables for every persisted model. Tests
// call it directly against an in-memory sqlite handle.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.OTPVerification{},
		&models.DeveloperProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.Application{},
		&models.Skill{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
