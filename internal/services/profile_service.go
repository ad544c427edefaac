package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"kora_backend/internal/models"
	"kora_backend/internal/repositories"
	"kora_backend/internal/services/dto"
	"kora_backend/pkg/apperrors"
)

// profileUpdateAllowList names the only keys a profile patch may carry.
var profileUpdateAllowList = map[string]bool{
	"propertyType": true,
	"bedrooms":     true,
	"pets":         true,
	"minPrice":     true,
	"maxPrice":     true,
	"location":     true,
}

type ProfileService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateProfileRequest) (*models.Profile, error)
	GetAll(ctx context.Context, db *gorm.DB) ([]models.Profile, error)
	GetByUserID(ctx context.Context, db *gorm.DB, userID string) (*models.Profile, error)
	Update(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.Profile, error)
}

type ProfileServiceImpl struct {
	profileRepo      repositories.ProfileRepository
	userRepo         repositories.UserRepository
	propertyTypeRepo repositories.PropertyTypeRepository
	authService      AuthService
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	propertyTypeRepo repositories.PropertyTypeRepository,
	authService AuthService,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo:      profileRepo,
		userRepo:         userRepo,
		propertyTypeRepo: propertyTypeRepo,
		authService:      authService,
	}
}

func (s *ProfileServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateProfileRequest) (*models.Profile, error) {
	user, err := s.userRepo.FindByID(db, req.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	types, err := s.propertyTypeRepo.FindByIDs(db, req.PropertyTypes)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPropertyTypeNotFound) {
			return nil, apperrors.NewBadRequestError("Unknown property type")
		}
		return nil, apperrors.InternalError(err)
	}

	profile := &models.Profile{
		UserID:        user.ID,
		PropertyTypes: types,
		Bedrooms:      *req.Bedrooms,
		Pets:          *req.Pets,
		MinPrice:      *req.MinPrice,
		MaxPrice:      *req.MaxPrice,
		Longitude:     req.Location.Longitude,
		Latitude:      req.Location.Latitude,
	}
	if err := s.profileRepo.Create(db, profile); err != nil {
		if apperrors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrProfileAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Creating a profile re-sends the account-verification notification so a
	// user who never received the first one can still complete signup.
	if err := s.authService.ResendVerification(ctx, db, user.ID); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetAll(ctx context.Context, db *gorm.DB) ([]models.Profile, error) {
	profiles, err := s.profileRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(profiles) == 0 {
		return nil, apperrors.NewNotFoundError("profile", "No profiles found")
	}
	return profiles, nil
}

func (s *ProfileServiceImpl) GetByUserID(ctx context.Context, db *gorm.DB, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// Update applies a partial patch. Any key outside the allow-list fails the
// whole request and nothing is modified.
func (s *ProfileServiceImpl) Update(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	if len(req.Fields) == 0 {
		return nil, apperrors.NewBadRequestError("Nothing to update")
	}

	var unknown []string
	for key := range req.Fields {
		if !profileUpdateAllowList[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("Unknown fields: %s", strings.Join(unknown, ", ")))
	}

	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.applyPatch(tx, profile, req.Fields)
	})
	if err != nil {
		return nil, wrapInternal(err)
	}

	return s.GetByUserID(ctx, db, userID)
}

func (s *ProfileServiceImpl) applyPatch(tx *gorm.DB, profile *models.Profile, fields map[string]interface{}) error {
	if raw, ok := fields["propertyType"]; ok {
		ids, err := toStringSlice(raw)
		if err != nil {
			return apperrors.NewBadRequestError("propertyType must be a list of ids")
		}
		types, err := s.propertyTypeRepo.FindByIDs(tx, ids)
		if err != nil {
			if apperrors.Is(err, repositories.ErrPropertyTypeNotFound) {
				return apperrors.NewBadRequestError("Unknown property type")
			}
			return err
		}
		if err := s.profileRepo.ReplacePropertyTypes(tx, profile, types); err != nil {
			return err
		}
	}

	if raw, ok := fields["bedrooms"]; ok {
		n, ok := raw.(float64)
		if !ok {
			return apperrors.NewBadRequestError("bedrooms must be a number")
		}
		profile.Bedrooms = int(n)
	}
	if raw, ok := fields["pets"]; ok {
		b, ok := raw.(bool)
		if !ok {
			return apperrors.NewBadRequestError("pets must be a boolean")
		}
		profile.Pets = b
	}
	if raw, ok := fields["minPrice"]; ok {
		n, ok := raw.(float64)
		if !ok {
			return apperrors.NewBadRequestError("minPrice must be a number")
		}
		profile.MinPrice = n
	}
	if raw, ok := fields["maxPrice"]; ok {
		n, ok := raw.(float64)
		if !ok {
			return apperrors.NewBadRequestError("maxPrice must be a number")
		}
		profile.MaxPrice = n
	}
	if raw, ok := fields["location"]; ok {
		loc, ok := raw.(map[string]interface{})
		if !ok {
			return apperrors.NewBadRequestError("location must be an object")
		}
		if lng, ok := loc["longitude"].(float64); ok {
			profile.Longitude = lng
		}
		if lat, ok := loc["latitude"].(float64); ok {
			profile.Latitude = lat
		}
	}

	return s.profileRepo.Update(tx, profile)
}

func toStringSlice(raw interface{}) ([]string, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("not a list")
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("not a string element")
		}
		out = append(out, s)
	}
	return out, nil
}
