package database

import (
	"fmt"
	"log"

	"github.com/Conceptual-Machines/fretboard-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the Postgres connection used for settings
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("✅ Database connected")
	return db, nil
}

// Migrate creates or updates the settings tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.FretboardSettings{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
