package database

import (
	"fmt"

	"catalog-importer/feature/importer/models"
	"catalog-importer/feature/media"

	"gorm.io/gorm"
)

// Migrate creates or updates the entity schema.
// The importer owns its schema, so the full entity graph is migrated at
// startup: authors, books, editions, subjects, and media assets.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&media.MediaAsset{},
		&models.Author{},
		&models.Book{},
		&models.Edition{},
		&models.Subject{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
