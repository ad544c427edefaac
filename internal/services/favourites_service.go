package services

import (
	"context"

	"gorm.io/gorm"

	"kora_backend/internal/models"
	"kora_backend/internal/repositories"
	"kora_backend/internal/services/dto"
	"kora_backend/pkg/apperrors"
)

type FavouritesService interface {
	Add(ctx context.Context, db *gorm.DB, req *dto.FavouriteRequest) (*models.Favourites, error)
	Remove(ctx context.Context, db *gorm.DB, req *dto.FavouriteRequest) (*models.Favourites, error)
	GetByUserID(ctx context.Context, db *gorm.DB, userID string) (*models.Favourites, error)
}

type FavouritesServiceImpl struct {
	favouritesRepo repositories.FavouritesRepository
	listingRepo    repositories.ListingRepository
}

func NewFavouritesService(
	favouritesRepo repositories.FavouritesRepository,
	listingRepo repositories.ListingRepository,
) FavouritesService {
	return &FavouritesServiceImpl{
		favouritesRepo: favouritesRepo,
		listingRepo:    listingRepo,
	}
}

func (s *FavouritesServiceImpl) Add(ctx context.Context, db *gorm.DB, req *dto.FavouriteRequest) (*models.Favourites, error) {
	listing, err := s.listingRepo.FindByID(db, req.ListingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	fav, err := s.favouritesRepo.AddListing(db, req.UserID, listing)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAlreadyFavourite) {
			return nil, apperrors.ErrAlreadyFavourite
		}
		return nil, apperrors.InternalError(err)
	}
	return fav, nil
}

// Remove detaches a listing; the returned document is nil when the removal
// emptied and deleted it.
func (s *FavouritesServiceImpl) Remove(ctx context.Context, db *gorm.DB, req *dto.FavouriteRequest) (*models.Favourites, error) {
	fav, err := s.favouritesRepo.RemoveListing(db, req.UserID, req.ListingID)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrFavouritesNotFound):
			return nil, apperrors.NewNotFoundError("favourites", "No favorites found for this user")
		case apperrors.Is(err, repositories.ErrNotInFavourites):
			return nil, apperrors.ErrNotInFavourites
		default:
			return nil, apperrors.InternalError(err)
		}
	}
	return fav, nil
}

func (s *FavouritesServiceImpl) GetByUserID(ctx context.Context, db *gorm.DB, userID string) (*models.Favourites, error) {
	fav, err := s.favouritesRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFavouritesNotFound) {
			return nil, apperrors.NewNotFoundError("favourites", "No favorites found for this user")
		}
		return nil, apperrors.InternalError(err)
	}
	return fav, nil
}
