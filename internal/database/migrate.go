package database

import (
	"gorm.io/gorm"

	"kora_backend/internal/models"
)

// RunMigrations applies the schema via AutoMigrate. Attachment comes first so
// foreign keys from amenities and listings resolve.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Attachment{},
		&models.User{},
		&models.PropertyType{},
		&models.Profile{},
		&models.Amenity{},
		&models.Listing{},
		&models.Review{},
		&models.Favourites{},
		&models.Transaction{},
	)
}
