package config

import (
	"fmt"
	"os"

	"github.com/davidbures/learnset-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var Database *gorm.DB

func Connect() error {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return fmt.Errorf("DB_URL is not set")
	}

	var err error
	// Relationship lifecycles (favorite-link cascade, the cards counter,
	// dangling cards after a set delete) are owned by the handlers, not by
	// store constraints.
	Database, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	err = Database.AutoMigrate(&models.Set{}, &models.Card{}, &models.UserSet{}, &models.Learning{})
	if err != nil {
		return fmt.Errorf("failed to auto migrate database: %w", err)
	}

	return nil
}

// Close releases the underlying connection pool. Safe to call when Connect
// never succeeded.
func Close() error {
	if Database == nil {
		return nil
	}
	sqlDB, err := Database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
