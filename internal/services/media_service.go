package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kora_backend/internal/models"
	"kora_backend/internal/repositories"
	"kora_backend/internal/storage"
	"kora_backend/pkg/apperrors"
)

// MediaService coordinates the object store and attachment rows. Attachment
// rows are created only after the object durably exists, and deleted only
// after the remote object is gone.
type MediaService interface {
	Attach(ctx context.Context, db *gorm.DB, file *multipart.FileHeader, folder, kind string) (*models.Attachment, error)
	Detach(ctx context.Context, db *gorm.DB, attachmentID string) error
	DeleteRemote(ctx context.Context, publicID string) error
}

type MediaServiceImpl struct {
	store          storage.Storage
	attachmentRepo repositories.AttachmentRepository
}

func NewMediaService(store storage.Storage, attachmentRepo repositories.AttachmentRepository) MediaService {
	return &MediaServiceImpl{
		store:          store,
		attachmentRepo: attachmentRepo,
	}
}

func (s *MediaServiceImpl) Attach(ctx context.Context, db *gorm.DB, file *multipart.FileHeader, folder, kind string) (*models.Attachment, error) {
	if file == nil {
		return nil, apperrors.ErrNoFileUploaded
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeValidationFailed, "media",
			"Failed to read uploaded file", 400)
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")

	if err := s.store.Save(ctx, key, src, contentType); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "media",
			"Failed to upload file", 400)
	}

	url, err := s.store.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	attachment := &models.Attachment{
		FileURL:  url,
		FileType: contentType,
		FileName: file.Filename,
		PublicID: key,
		Kind:     kind,
	}
	if err := s.attachmentRepo.Create(db, attachment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return attachment, nil
}

// Detach removes the remote object first; the row is kept when the remote
// delete fails so the reference never dangles.
func (s *MediaServiceImpl) Detach(ctx context.Context, db *gorm.DB, attachmentID string) error {
	attachment, err := s.attachmentRepo.FindByID(db, attachmentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAttachmentNotFound) {
			return apperrors.NewNotFoundError("media", "Attachment not found")
		}
		return apperrors.InternalError(err)
	}

	if err := s.store.Delete(ctx, attachment.PublicID); err != nil {
		return apperrors.ErrRemoteDeleteFailed
	}

	return wrapInternal(s.attachmentRepo.Delete(db, attachment.ID))
}

func (s *MediaServiceImpl) DeleteRemote(ctx context.Context, publicID string) error {
	if err := s.store.Delete(ctx, publicID); err != nil {
		return apperrors.ErrRemoteDeleteFailed
	}
	return nil
}
