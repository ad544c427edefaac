package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"

	"kora_backend/internal/auth"
	"kora_backend/internal/models"
	"kora_backend/internal/notifier"
	"kora_backend/internal/repositories"
	"kora_backend/internal/services/dto"
	"kora_backend/pkg/apperrors"
)

const otpTTL = 2 * time.Minute

type AuthService interface {
	Signup(ctx context.Context, db *gorm.DB, req *dto.SignupRequest) (*models.User, error)
	VerifyAccount(ctx context.Context, db *gorm.DB, token string) error
	ResendVerification(ctx context.Context, db *gorm.DB, userID string) error
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ForgotPassword(ctx context.Context, db *gorm.DB, email string) error
	ResetPassword(ctx context.Context, db *gorm.DB, req *dto.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, db *gorm.DB, req *dto.ChangePasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo   repositories.UserRepository
	notify     notifier.Provider
	backendURL string
}

func NewAuthService(userRepo repositories.UserRepository, notify notifier.Provider, backendURL string) AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		notify:     notify,
		backendURL: backendURL,
	}
}

func (s *AuthServiceImpl) Signup(ctx context.Context, db *gorm.DB, req *dto.SignupRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		PhoneNo:      req.PhoneNo,
		Roles:        models.RolesDocument(map[string]int{"User": auth.RoleUser}),
		IsVerified:   false,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.sendVerification(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// sendVerification issues a short-lived verify token and triggers the
// verification notification carrying the backend link.
func (s *AuthServiceImpl) sendVerification(ctx context.Context, user *models.User) error {
	token, err := auth.GenerateVerifyToken(user.ID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	link := fmt.Sprintf("%s/auth/user/verify-account/%s", s.backendURL, token)
	err = s.notify.Trigger(ctx, notifier.EventVerifyAccount,
		notifier.To{SubscriberID: user.ID, Email: user.Email},
		map[string]interface{}{"LINK": link},
	)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeExternalServiceError, "notifier",
			"Failed to send verification notification", 500)
	}
	return nil
}

// ResendVerification re-issues the verification notification for an existing
// user. Used by the profile flow.
func (s *AuthServiceImpl) ResendVerification(ctx context.Context, db *gorm.DB, userID string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return s.sendVerification(ctx, user)
}

func (s *AuthServiceImpl) VerifyAccount(ctx context.Context, db *gorm.DB, token string) error {
	claims, err := auth.ParseVerifyToken(token)
	if err != nil {
		// Expired and malformed tokens surface identically.
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.SetVerified(db, claims.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, apperrors.ErrAccountNotVerified
	}
	if user.AccountDisabled {
		return nil, apperrors.ErrAccountDisabled
	}

	token, err := auth.GenerateAccessToken(user.ID, user.RoleCodes())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{AccessToken: token, User: user}, nil
}

func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, db *gorm.DB, email string) error {
	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	otp, err := generateOTP()
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.SetOTP(db, user.ID, otp, time.Now().Add(otpTTL)); err != nil {
		return apperrors.InternalError(err)
	}

	err = s.notify.Trigger(ctx, notifier.EventForgotPassword,
		notifier.To{SubscriberID: user.ID, Email: user.Email},
		map[string]interface{}{"OTP": otp},
	)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeExternalServiceError, "notifier",
			"Failed to send password reset notification", 500)
	}
	return nil
}

func (s *AuthServiceImpl) ResetPassword(ctx context.Context, db *gorm.DB, req *dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewBadRequestError("Invalid email")
		}
		return apperrors.InternalError(err)
	}

	if user.OTP == nil || *user.OTP != req.OTP ||
		user.OTPExpiresAt == nil || time.Now().After(*user.OTPExpiresAt) {
		return apperrors.ErrInvalidOTP
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return wrapInternal(db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.UpdatePassword(tx, user.ID, hash); err != nil {
			return err
		}
		return s.userRepo.ClearOTP(tx, user.ID)
	}))
}

func (s *AuthServiceImpl) ChangePassword(ctx context.Context, db *gorm.DB, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(db, req.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrWrongCurrentPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	return wrapInternal(s.userRepo.UpdatePassword(db, user.ID, hash))
}

// generateOTP returns a 5-digit numeric one-time password.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%05d", n.Int64()), nil
}

func wrapInternal(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.InternalError(err)
}
