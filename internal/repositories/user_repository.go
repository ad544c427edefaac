package repositories

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"kora_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	FindAll(db *gorm.DB) ([]models.User, error)
	Update(db *gorm.DB, user *models.User) error
	SetVerified(db *gorm.DB, id string) error
	SetOTP(db *gorm.DB, id string, otp string, expiresAt time.Time) error
	ClearOTP(db *gorm.DB, id string) error
	ClearExpiredOTPs(db *gorm.DB, now time.Time) (int64, error)
	UpdatePassword(db *gorm.DB, id string, passwordHash string) error
	Delete(db *gorm.DB, id string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	user.Email = strings.ToLower(user.Email)

	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(user).Error
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAll(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.User) error {
	result := db.Save(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetVerified(db *gorm.DB, id string) error {
	result := db.Model(&models.User{}).Where("id = ?", id).Update("is_verified", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetOTP(db *gorm.DB, id string, otp string, expiresAt time.Time) error {
	result := db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"otp":            otp,
		"otp_expires_at": expiresAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) ClearOTP(db *gorm.DB, id string) error {
	return db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"otp":            nil,
		"otp_expires_at": nil,
	}).Error
}

// ClearExpiredOTPs wipes every OTP past its expiry. Called by the janitor.
func (r *UserRepositoryImpl) ClearExpiredOTPs(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Model(&models.User{}).
		Where("otp IS NOT NULL AND otp_expires_at < ?", now).
		Updates(map[string]interface{}{
			"otp":            nil,
			"otp_expires_at": nil,
		})
	return result.RowsAffected, result.Error
}

func (r *UserRepositoryImpl) UpdatePassword(db *gorm.DB, id string, passwordHash string) error {
	result := db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes the user together with their profile and favourites in one
// transaction.
func (r *UserRepositoryImpl) Delete(db *gorm.DB, id string) error {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Profile{}).Error; err != nil {
			return err
		}

		var fav models.Favourites
		if err := tx.Where("user_id = ?", id).First(&fav).Error; err == nil {
			if err := tx.Model(&fav).Association("Listings").Clear(); err != nil {
				return err
			}
			if err := tx.Delete(&fav).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Delete(&user).Error
	})
}
