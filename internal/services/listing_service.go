package services

import (
	"context"
	"mime/multipart"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"kora_backend/internal/models"
	"kora_backend/internal/repositories"
	"kora_backend/internal/services/dto"
	"kora_backend/pkg/apperrors"
)

// MaxListingImages caps how many images a listing accepts at creation.
const MaxListingImages = 2

type ListingService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateListingRequest, images []*multipart.FileHeader) (*models.Listing, error)
	GetAll(ctx context.Context, db *gorm.DB) ([]models.Listing, error)
	GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Listing, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type ListingServiceImpl struct {
	listingRepo      repositories.ListingRepository
	amenityRepo      repositories.AmenityRepository
	propertyTypeRepo repositories.PropertyTypeRepository
	media            MediaService
}

func NewListingService(
	listingRepo repositories.ListingRepository,
	amenityRepo repositories.AmenityRepository,
	propertyTypeRepo repositories.PropertyTypeRepository,
	media MediaService,
) ListingService {
	return &ListingServiceImpl{
		listingRepo:      listingRepo,
		amenityRepo:      amenityRepo,
		propertyTypeRepo: propertyTypeRepo,
		media:            media,
	}
}

func (s *ListingServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateListingRequest, images []*multipart.FileHeader) (*models.Listing, error) {
	if len(images) == 0 {
		return nil, apperrors.ErrNoFileUploaded
	}
	if len(images) > MaxListingImages {
		return nil, apperrors.ErrTooManyFiles
	}

	propertyType, err := s.propertyTypeRepo.FindByID(db, req.PropertyTypeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPropertyTypeNotFound) {
			return nil, apperrors.NewBadRequestError("Unknown property type")
		}
		return nil, apperrors.InternalError(err)
	}

	var amenities []models.Amenity
	if len(req.Amenities) > 0 {
		amenities, err = s.amenityRepo.FindByIDs(db, req.Amenities)
		if err != nil {
			if apperrors.Is(err, repositories.ErrAmenityNotFound) {
				return nil, apperrors.NewBadRequestError("Unknown amenity")
			}
			return nil, apperrors.InternalError(err)
		}
	}

	var listing *models.Listing
	err = db.Transaction(func(tx *gorm.DB) error {
		attachments := make([]models.Attachment, 0, len(images))
		for _, img := range images {
			attachment, err := s.media.Attach(ctx, tx, img, "listings", models.AttachmentKindListingImg)
			if err != nil {
				return err
			}
			attachments = append(attachments, *attachment)
		}

		listing = &models.Listing{
			Name:           req.Name,
			Description:    req.Description,
			Amenities:      amenities,
			PropertyTypeID: propertyType.ID,
			PropertyType:   *propertyType,
			Longitude:      req.Longitude,
			Latitude:       req.Latitude,
			Price:          req.Price,
			Images:         attachments,
		}
		if err := s.listingRepo.Create(tx, listing); err != nil {
			if apperrors.Is(err, repositories.ErrListingAlreadyExists) {
				return apperrors.NewConflictError("listing", "Listing already exists")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, wrapInternal(err)
	}
	return listing, nil
}

func (s *ListingServiceImpl) GetAll(ctx context.Context, db *gorm.DB) ([]models.Listing, error) {
	listings, err := s.listingRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(listings) == 0 {
		return nil, apperrors.NewNotFoundError("listing", "No listings found")
	}
	return listings, nil
}

func (s *ListingServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Listing, error) {
	listing, err := s.listingRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return listing, nil
}

// Delete issues all remote image deletes concurrently and joins before any DB
// mutation. On partial failure nothing local is touched and remotes that were
// already deleted stay deleted.
func (s *ListingServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	listing, err := s.listingRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return apperrors.ErrListingNotFound
		}
		return apperrors.InternalError(err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, img := range listing.Images {
		publicID := img.PublicID
		g.Go(func() error {
			return s.media.DeleteRemote(gctx, publicID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return wrapInternal(s.listingRepo.Delete(db, id))
}
