package services

import (
	"context"

	"gorm.io/gorm"

	"kora_backend/internal/models"
	"kora_backend/internal/repositories"
	"kora_backend/internal/services/dto"
	"kora_backend/pkg/apperrors"
)

type PropertyTypeService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreatePropertyTypeRequest) (*models.PropertyType, error)
	GetAll(ctx context.Context, db *gorm.DB) ([]models.PropertyType, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type PropertyTypeServiceImpl struct {
	propertyTypeRepo repositories.PropertyTypeRepository
}

func NewPropertyTypeService(propertyTypeRepo repositories.PropertyTypeRepository) PropertyTypeService {
	return &PropertyTypeServiceImpl{propertyTypeRepo: propertyTypeRepo}
}

func (s *PropertyTypeServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreatePropertyTypeRequest) (*models.PropertyType, error) {
	propertyType := &models.PropertyType{Name: req.Name}
	if err := s.propertyTypeRepo.Create(db, propertyType); err != nil {
		if apperrors.Is(err, repositories.ErrPropertyTypeAlreadyExists) {
			return nil, apperrors.NewConflictError("property_type", "Property type already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return propertyType, nil
}

func (s *PropertyTypeServiceImpl) GetAll(ctx context.Context, db *gorm.DB) ([]models.PropertyType, error) {
	types, err := s.propertyTypeRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(types) == 0 {
		return nil, apperrors.NewNotFoundError("property_type", "No Property Types found")
	}
	return types, nil
}

func (s *PropertyTypeServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.propertyTypeRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrPropertyTypeNotFound) {
			return apperrors.NewNotFoundError("property_type", "Property type not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
