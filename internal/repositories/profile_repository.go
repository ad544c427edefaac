package repositories

import (
	"errors"

	"gorm.io/gorm"

	"kora_backend/internal/models"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	FindByUserID(db *gorm.DB, userID string) (*models.Profile, error)
	FindAll(db *gorm.DB) ([]models.Profile, error)
	Update(db *gorm.DB, profile *models.Profile) error
	ReplacePropertyTypes(db *gorm.DB, profile *models.Profile, types []models.PropertyType) error
	DeleteByUserID(db *gorm.DB, userID string) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) Create(db *gorm.DB, profile *models.Profile) error {
	var existing models.Profile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Preload("PropertyTypes").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindAll(db *gorm.DB) ([]models.Profile, error) {
	var profiles []models.Profile
	err := db.Preload("PropertyTypes").Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) Update(db *gorm.DB, profile *models.Profile) error {
	result := db.Save(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) ReplacePropertyTypes(db *gorm.DB, profile *models.Profile, types []models.PropertyType) error {
	return db.Model(profile).Association("PropertyTypes").Replace(types)
}

func (r *ProfileRepositoryImpl) DeleteByUserID(db *gorm.DB, userID string) error {
	result := db.Where("user_id = ?", userID).Delete(&models.Profile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
