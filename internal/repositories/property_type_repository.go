package repositories

import (
	"errors"

	"gorm.io/gorm"

	"kora_backend/internal/models"
)

var (
	ErrPropertyTypeNotFound      = errors.New("property type not found")
	ErrPropertyTypeAlreadyExists = errors.New("property type already exists")
)

type PropertyTypeRepository interface {
	Create(db *gorm.DB, propertyType *models.PropertyType) error
	FindByID(db *gorm.DB, id string) (*models.PropertyType, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.PropertyType, error)
	FindAll(db *gorm.DB) ([]models.PropertyType, error)
	Delete(db *gorm.DB, id string) error
}

type PropertyTypeRepositoryImpl struct{}

func NewPropertyTypeRepository() PropertyTypeRepository {
	return &PropertyTypeRepositoryImpl{}
}

func (r *PropertyTypeRepositoryImpl) Create(db *gorm.DB, propertyType *models.PropertyType) error {
	var existing models.PropertyType
	if err := db.Where("name = ?", propertyType.Name).First(&existing).Error; err == nil {
		return ErrPropertyTypeAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(propertyType).Error
}

func (r *PropertyTypeRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.PropertyType, error) {
	var propertyType models.PropertyType
	if err := db.First(&propertyType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyTypeNotFound
		}
		return nil, err
	}
	return &propertyType, nil
}

func (r *PropertyTypeRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.PropertyType, error) {
	var types []models.PropertyType
	if err := db.Where("id IN ?", ids).Find(&types).Error; err != nil {
		return nil, err
	}
	if len(types) != len(ids) {
		return nil, ErrPropertyTypeNotFound
	}
	return types, nil
}

func (r *PropertyTypeRepositoryImpl) FindAll(db *gorm.DB) ([]models.PropertyType, error) {
	var types []models.PropertyType
	err := db.Order("name ASC").Find(&types).Error
	return types, err
}

func (r *PropertyTypeRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.PropertyType{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropertyTypeNotFound
	}
	return nil
}
