package repositories

import (
	"errors"

	"gorm.io/gorm"

	"kora_backend/internal/models"
)

var (
	ErrFavouritesNotFound = errors.New("favourites not found")
	ErrAlreadyFavourite   = errors.New("listing already in favourites")
	ErrNotInFavourites    = errors.New("listing not in favourites")
)

type FavouritesRepository interface {
	AddListing(db *gorm.DB, userID string, listing *models.Listing) (*models.Favourites, error)
	RemoveListing(db *gorm.DB, userID string, listingID string) (*models.Favourites, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Favourites, error)
}

type FavouritesRepositoryImpl struct{}

func NewFavouritesRepository() FavouritesRepository {
	return &FavouritesRepositoryImpl{}
}

// AddListing appends a listing to the user's favourites, creating the document
// on first use. Duplicate adds are rejected.
func (r *FavouritesRepositoryImpl) AddListing(db *gorm.DB, userID string, listing *models.Listing) (*models.Favourites, error) {
	var fav models.Favourites
	err := db.Preload("Listings").Where("user_id = ?", userID).First(&fav).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		fav = models.Favourites{UserID: userID}
		if err := db.Create(&fav).Error; err != nil {
			return nil, err
		}
	}

	for _, l := range fav.Listings {
		if l.ID == listing.ID {
			return nil, ErrAlreadyFavourite
		}
	}

	if err := db.Model(&fav).Association("Listings").Append(listing); err != nil {
		return nil, err
	}

	return r.FindByUserID(db, userID)
}

// RemoveListing detaches a listing; removing the last one deletes the whole
// document and returns nil.
func (r *FavouritesRepositoryImpl) RemoveListing(db *gorm.DB, userID string, listingID string) (*models.Favourites, error) {
	var fav models.Favourites
	if err := db.Preload("Listings").Where("user_id = ?", userID).First(&fav).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavouritesNotFound
		}
		return nil, err
	}

	var target *models.Listing
	for i := range fav.Listings {
		if fav.Listings[i].ID == listingID {
			target = &fav.Listings[i]
			break
		}
	}
	if target == nil {
		return nil, ErrNotInFavourites
	}

	if err := db.Model(&fav).Association("Listings").Delete(target); err != nil {
		return nil, err
	}

	if len(fav.Listings) == 1 {
		if err := db.Delete(&fav).Error; err != nil {
			return nil, err
		}
		return nil, nil
	}

	return r.FindByUserID(db, userID)
}

func (r *FavouritesRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Favourites, error) {
	var fav models.Favourites
	err := db.Preload("Listings.Images").Preload("Listings.PropertyType").
		Where("user_id = ?", userID).First(&fav).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavouritesNotFound
		}
		return nil, err
	}
	return &fav, nil
}
