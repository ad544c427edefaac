package services

import (
	"context"

	"gorm.io/gorm"

	"kora_backend/internal/models"
	"kora_backend/internal/repositories"
	"kora_backend/internal/services/dto"
	"kora_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateReviewRequest) (*models.Review, error)
	GetByListing(ctx context.Context, db *gorm.DB, listingID string) ([]models.Review, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	userRepo    repositories.UserRepository
	listingRepo repositories.ListingRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
	listingRepo repositories.ListingRepository,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		listingRepo: listingRepo,
	}
}

func (s *ReviewServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewBadRequestError("Unknown user")
		}
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.listingRepo.FindByID(db, req.ListingID); err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.NewBadRequestError("Unknown listing")
		}
		return nil, apperrors.InternalError(err)
	}

	review := &models.Review{
		UserID:    req.UserID,
		ListingID: req.ListingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviewRepo.Create(db, review); err != nil {
		if apperrors.Is(err, repositories.ErrInvalidReviewRating) {
			return nil, apperrors.NewBadRequestError("Rating must be between 1 and 5")
		}
		return nil, apperrors.InternalError(err)
	}
	return review, nil
}

func (s *ReviewServiceImpl) GetByListing(ctx context.Context, db *gorm.DB, listingID string) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindByListing(db, listingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(reviews) == 0 {
		return nil, apperrors.NewNotFoundError("review", "No reviews found for this listing")
	}
	return reviews, nil
}

func (s *ReviewServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.reviewRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.NewNotFoundError("review", "Review not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
