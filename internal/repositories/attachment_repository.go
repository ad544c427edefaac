package repositories

import (
	"errors"

	"gorm.io/gorm"

	"kora_backend/internal/models"
)

var ErrAttachmentNotFound = errors.New("attachment not found")

type AttachmentRepository interface {
	Create(db *gorm.DB, attachment *models.Attachment) error
	FindByID(db *gorm.DB, id string) (*models.Attachment, error)
	Delete(db *gorm.DB, id string) error
}

type AttachmentRepositoryImpl struct{}

func NewAttachmentRepository() AttachmentRepository {
	return &AttachmentRepositoryImpl{}
}

func (r *AttachmentRepositoryImpl) Create(db *gorm.DB, attachment *models.Attachment) error {
	return db.Create(attachment).Error
}

func (r *AttachmentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Attachment, error) {
	var attachment models.Attachment
	if err := db.First(&attachment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttachmentNotFound
		}
		return nil, err
	}
	return &attachment, nil
}

func (r *AttachmentRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Attachment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAttachmentNotFound
	}
	return nil
}
