package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"kora_backend/internal/models"
	"kora_backend/internal/notifier"
	"kora_backend/internal/repositories"
	"kora_backend/internal/services/dto"
	"kora_backend/pkg/apperrors"
)

type TransactionService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetByUserAndListing(ctx context.Context, db *gorm.DB, userID, listingID string) (*models.Transaction, error)
}

type TransactionServiceImpl struct {
	transactionRepo repositories.TransactionRepository
	userRepo        repositories.UserRepository
	listingRepo     repositories.ListingRepository
	notify          notifier.Provider
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepository,
	userRepo repositories.UserRepository,
	listingRepo repositories.ListingRepository,
	notify notifier.Provider,
) TransactionService {
	return &TransactionServiceImpl{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		listingRepo:     listingRepo,
		notify:          notify,
	}
}

func (s *TransactionServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	user, err := s.userRepo.FindByID(db, req.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewBadRequestError("Unknown user")
		}
		return nil, apperrors.InternalError(err)
	}

	listing, err := s.listingRepo.FindByID(db, req.ListingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.NewBadRequestError("Unknown listing")
		}
		return nil, apperrors.InternalError(err)
	}

	transaction := &models.Transaction{
		UserID:    user.ID,
		ListingID: listing.ID,
	}
	if err := s.transactionRepo.Create(db, transaction); err != nil {
		return nil, apperrors.InternalError(err)
	}

	amount := req.Amount
	if amount == 0 {
		amount = listing.Price
	}

	err = s.notify.Trigger(ctx, notifier.EventTransaction,
		notifier.To{SubscriberID: user.ID, Email: user.Email},
		map[string]interface{}{
			"reservation_id":  transaction.ID,
			"user_email":      user.Email,
			"listing_name":    listing.Name,
			"listing_address": fmt.Sprintf("%f, %f", listing.Latitude, listing.Longitude),
			"amount":          amount,
			"billed_date":     time.Now().Format("2006-01-02"),
		},
	)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "notifier",
			"Failed to send transaction notification", 500)
	}

	return transaction, nil
}

func (s *TransactionServiceImpl) GetByUserAndListing(ctx context.Context, db *gorm.DB, userID, listingID string) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.FindByUserAndListing(db, userID, listingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.NewNotFoundError("transaction", "Transaction not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return transaction, nil
}
