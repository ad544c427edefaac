package repositories

import (
	"errors"

	"gorm.io/gorm"

	"kora_backend/internal/models"
)

var (
	ErrListingNotFound      = errors.New("listing not found")
	ErrListingAlreadyExists = errors.New("listing already exists")
)

type ListingRepository interface {
	Create(db *gorm.DB, listing *models.Listing) error
	FindByID(db *gorm.DB, id string) (*models.Listing, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.Listing, error)
	FindAll(db *gorm.DB) ([]models.Listing, error)
	UpdateRating(db *gorm.DB, id string, rating float64) error
	Delete(db *gorm.DB, id string) error
}

type ListingRepositoryImpl struct{}

func NewListingRepository() ListingRepository {
	return &ListingRepositoryImpl{}
}

func (r *ListingRepositoryImpl) Create(db *gorm.DB, listing *models.Listing) error {
	var existing models.Listing
	if err := db.Where("name = ?", listing.Name).First(&existing).Error; err == nil {
		return ErrListingAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(listing).Error
}

func (r *ListingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Listing, error) {
	var listing models.Listing
	err := db.Preload("Amenities.Icon").Preload("PropertyType").Preload("Images").
		First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.Listing, error) {
	var listings []models.Listing
	if err := db.Where("id IN ?", ids).Find(&listings).Error; err != nil {
		return nil, err
	}
	if len(listings) != len(ids) {
		return nil, ErrListingNotFound
	}
	return listings, nil
}

func (r *ListingRepositoryImpl) FindAll(db *gorm.DB) ([]models.Listing, error) {
	var listings []models.Listing
	err := db.Preload("Amenities.Icon").Preload("PropertyType").Preload("Images").
		Order("created_at DESC").Find(&listings).Error
	return listings, err
}

func (r *ListingRepositoryImpl) UpdateRating(db *gorm.DB, id string, rating float64) error {
	result := db.Model(&models.Listing{}).Where("id = ?", id).Update("rating", rating)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

// Delete removes the listing, its join rows and its image rows in one
// transaction. Remote objects must already be gone; see the listing service.
func (r *ListingRepositoryImpl) Delete(db *gorm.DB, id string) error {
	var listing models.Listing
	if err := db.Preload("Images").First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&listing).Association("Amenities").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&listing).Association("Images").Clear(); err != nil {
			return err
		}
		for _, img := range listing.Images {
			if err := tx.Where("id = ?", img.ID).Delete(&models.Attachment{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&listing).Error
	})
}
