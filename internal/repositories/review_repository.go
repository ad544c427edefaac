package repositories

import (
	"errors"

	"gorm.io/gorm"

	"kora_backend/internal/models"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrInvalidReviewRating = errors.New("rating must be between 1 and 5")
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindByListing(db *gorm.DB, listingID string) ([]models.Review, error)
	Delete(db *gorm.DB, id string) error
	CalculateListingRating(db *gorm.DB, listingID string) (float64, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidReviewRating
	}

	if err := db.Create(review).Error; err != nil {
		return err
	}
	return r.refreshListingRating(db, review.ListingID)
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	if err := db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByListing(db *gorm.DB, listingID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("listing_id = ?", listingID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) Delete(db *gorm.DB, id string) error {
	var review models.Review
	if err := db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if err := db.Delete(&review).Error; err != nil {
		return err
	}
	return r.refreshListingRating(db, review.ListingID)
}

func (r *ReviewRepositoryImpl) CalculateListingRating(db *gorm.DB, listingID string) (float64, error) {
	var avg float64
	err := db.Model(&models.Review{}).Where("listing_id = ?", listingID).
		Select("COALESCE(AVG(rating), 0)").Scan(&avg).Error
	return avg, err
}

func (r *ReviewRepositoryImpl) refreshListingRating(db *gorm.DB, listingID string) error {
	avg, err := r.CalculateListingRating(db, listingID)
	if err != nil {
		return err
	}
	return db.Model(&models.Listing{}).Where("id = ?", listingID).Update("rating", avg).Error
}
