package services

import (
	"context"
	"mime/multipart"

	"gorm.io/gorm"

	"kora_backend/internal/models"
	"kora_backend/internal/repositories"
	"kora_backend/internal/services/dto"
	"kora_backend/pkg/apperrors"
)

type AmenityService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateAmenityRequest, icon *multipart.FileHeader) (*models.Amenity, error)
	GetAll(ctx context.Context, db *gorm.DB) ([]models.Amenity, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type AmenityServiceImpl struct {
	amenityRepo repositories.AmenityRepository
	media       MediaService
}

func NewAmenityService(amenityRepo repositories.AmenityRepository, media MediaService) AmenityService {
	return &AmenityServiceImpl{
		amenityRepo: amenityRepo,
		media:       media,
	}
}

// Create uploads the icon, then writes the attachment and amenity rows in one
// transaction so the amenity never references an icon that does not exist.
func (s *AmenityServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateAmenityRequest, icon *multipart.FileHeader) (*models.Amenity, error) {
	if icon == nil {
		return nil, apperrors.ErrNoFileUploaded
	}

	var amenity *models.Amenity
	err := db.Transaction(func(tx *gorm.DB) error {
		attachment, err := s.media.Attach(ctx, tx, icon, "amenities", models.AttachmentKindAmenityIcon)
		if err != nil {
			return err
		}

		amenity = &models.Amenity{
			Name:   req.Name,
			IconID: attachment.ID,
			Icon:   *attachment,
		}
		if err := s.amenityRepo.Create(tx, amenity); err != nil {
			if apperrors.Is(err, repositories.ErrAmenityAlreadyExists) {
				return apperrors.NewConflictError("amenity", "Amenity already exists")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, wrapInternal(err)
	}
	return amenity, nil
}

func (s *AmenityServiceImpl) GetAll(ctx context.Context, db *gorm.DB) ([]models.Amenity, error) {
	amenities, err := s.amenityRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(amenities) == 0 {
		return nil, apperrors.NewNotFoundError("amenity", "No amenities found")
	}
	return amenities, nil
}

// Delete removes the remote icon first. If the remote delete fails the local
// rows stay so the icon reference never dangles.
func (s *AmenityServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	amenity, err := s.amenityRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAmenityNotFound) {
			return apperrors.NewNotFoundError("amenity", "Amenity not found")
		}
		return apperrors.InternalError(err)
	}

	if err := s.media.DeleteRemote(ctx, amenity.Icon.PublicID); err != nil {
		return err
	}

	return wrapInternal(s.amenityRepo.Delete(db, id))
}
