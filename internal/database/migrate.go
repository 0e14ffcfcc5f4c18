package database

import (
	"gorm.io/gorm"

	"github.com/saucepan-labs/recipebook/backend/internal/model"
)

// Migrate applies the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Recipe{},
	)
}
