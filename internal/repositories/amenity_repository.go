package repositories

import (
	"errors"

	"gorm.io/gorm"

	"kora_backend/internal/models"
)

var (
	ErrAmenityNotFound      = errors.New("amenity not found")
	ErrAmenityAlreadyExists = errors.New("amenity already exists")
)

type AmenityRepository interface {
	Create(db *gorm.DB, amenity *models.Amenity) error
	FindByID(db *gorm.DB, id string) (*models.Amenity, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.Amenity, error)
	FindAll(db *gorm.DB) ([]models.Amenity, error)
	Delete(db *gorm.DB, id string) error
}

type AmenityRepositoryImpl struct{}

func NewAmenityRepository() AmenityRepository {
	return &AmenityRepositoryImpl{}
}

func (r *AmenityRepositoryImpl) Create(db *gorm.DB, amenity *models.Amenity) error {
	var existing models.Amenity
	if err := db.Where("name = ?", amenity.Name).First(&existing).Error; err == nil {
		return ErrAmenityAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(amenity).Error
}

func (r *AmenityRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Amenity, error) {
	var amenity models.Amenity
	if err := db.Preload("Icon").First(&amenity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, err
	}
	return &amenity, nil
}

func (r *AmenityRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.Amenity, error) {
	var amenities []models.Amenity
	if err := db.Preload("Icon").Where("id IN ?", ids).Find(&amenities).Error; err != nil {
		return nil, err
	}
	if len(amenities) != len(ids) {
		return nil, ErrAmenityNotFound
	}
	return amenities, nil
}

func (r *AmenityRepositoryImpl) FindAll(db *gorm.DB) ([]models.Amenity, error) {
	var amenities []models.Amenity
	err := db.Preload("Icon").Order("name ASC").Find(&amenities).Error
	return amenities, err
}

// Delete removes the amenity and its icon row in one transaction. The remote
// object must already be gone; see the amenity service.
func (r *AmenityRepositoryImpl) Delete(db *gorm.DB, id string) error {
	var amenity models.Amenity
	if err := db.First(&amenity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAmenityNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&amenity).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", amenity.IconID).Delete(&models.Attachment{}).Error
	})
}
