package repositories

import (
	"errors"

	"gorm.io/gorm"

	"kora_backend/internal/models"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionRepository interface {
	Create(db *gorm.DB, transaction *models.Transaction) error
	FindByUserAndListing(db *gorm.DB, userID, listingID string) (*models.Transaction, error)
}

type TransactionRepositoryImpl struct{}

func NewTransactionRepository() TransactionRepository {
	return &TransactionRepositoryImpl{}
}

func (r *TransactionRepositoryImpl) Create(db *gorm.DB, transaction *models.Transaction) error {
	return db.Create(transaction).Error
}

func (r *TransactionRepositoryImpl) FindByUserAndListing(db *gorm.DB, userID, listingID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := db.Where("user_id = ? AND listing_id = ?", userID, listingID).
		Order("created_at DESC").First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}
