package database

import (
	"mentorhub_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates/updates the schema for both record kinds. The unique
// indexes on the email columns are what enforces the duplicate-email
// contract, so a failed migration is fatal to startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Mentor{},
		&models.Mentee{},
	)
}
