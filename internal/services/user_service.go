package services

import (
	"context"

	"gorm.io/gorm"

	"kora_backend/internal/models"
	"kora_backend/internal/repositories"
	"kora_backend/pkg/apperrors"
)

type UserService interface {
	GetAll(ctx context.Context, db *gorm.DB) ([]models.User, error)
	GetByID(ctx context.Context, db *gorm.DB, id string) (*models.User, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetAll(ctx context.Context, db *gorm.DB) ([]models.User, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(users) == 0 {
		return nil, apperrors.NewNotFoundError("user", "No users found")
	}
	return users, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, db *gorm.DB, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.userRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
