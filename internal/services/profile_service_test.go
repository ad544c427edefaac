package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kora_backend/internal/models"
	"kora_backend/internal/notifier"
	"kora_backend/internal/services/dto"
	"kora_backend/pkg/apperrors"
)

type profileFixture struct {
	userRepo    *fakeUserRepo
	profileRepo *fakeProfileRepo
	typeRepo    *fakePropertyTypeRepo
	notify      *fakeNotifier
	svc         ProfileService
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()
	userRepo := newFakeUserRepo()
	profileRepo := newFakeProfileRepo()
	typeRepo := newFakePropertyTypeRepo()
	notify := &fakeNotifier{}
	authService := NewAuthService(userRepo, notify, "http://localhost:5500")

	require.NoError(t, userRepo.Create(nil, &models.User{Email: "jane@example.com"}))
	require.NoError(t, typeRepo.Create(nil, &models.PropertyType{Name: "Apartment"}))

	return &profileFixture{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		typeRepo:    typeRepo,
		notify:      notify,
		svc:         NewProfileService(profileRepo, userRepo, typeRepo, authService),
	}
}

func validProfileReq() *dto.CreateProfileRequest {
	bedrooms := 2
	pets := true
	minPrice := 500.0
	maxPrice := 1500.0
	return &dto.CreateProfileRequest{
		UserID:        "user-jane@example.com",
		PropertyTypes: []string{"pt-Apartment"},
		Bedrooms:      &bedrooms,
		Pets:          &pets,
		MinPrice:      &minPrice,
		MaxPrice:      &maxPrice,
		Location:      dto.LocationDTO{Longitude: 36.8, Latitude: -1.3},
	}
}

func TestProfileCreate(t *testing.T) {
	f := newProfileFixture(t)

	profile, err := f.svc.Create(context.Background(), nil, validProfileReq())
	require.NoError(t, err)
	assert.Equal(t, 2, profile.Bedrooms)
	assert.True(t, profile.Pets)

	// Profile creation re-sends the verification notification.
	require.Len(t, f.notify.triggers, 1)
	assert.Equal(t, notifier.EventVerifyAccount, f.notify.triggers[0].Event)
}

func TestProfileCreateDuplicateConflicts(t *testing.T) {
	f := newProfileFixture(t)

	_, err := f.svc.Create(context.Background(), nil, validProfileReq())
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), nil, validProfileReq())
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestProfileCreateUnknownUser(t *testing.T) {
	f := newProfileFixture(t)

	req := validProfileReq()
	req.UserID = "missing"
	_, err := f.svc.Create(context.Background(), nil, req)
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestProfileUpdateRejectsUnknownKeys(t *testing.T) {
	f := newProfileFixture(t)

	_, err := f.svc.Create(context.Background(), nil, validProfileReq())
	require.NoError(t, err)

	_, err = f.svc.Update(context.Background(), nil, "user-jane@example.com", &dto.UpdateProfileRequest{
		Fields: map[string]interface{}{
			"bedrooms": float64(3),
			"email":    "evil@example.com",
			"roles":    []interface{}{"Admin"},
		},
	})
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPCode)

	// The message enumerates every offending key.
	assert.Contains(t, appErr.Message, "email")
	assert.Contains(t, appErr.Message, "roles")

	// Nothing was modified, not even the allowed key.
	assert.Zero(t, f.profileRepo.updates)
	stored, _ := f.profileRepo.FindByUserID(nil, "user-jane@example.com")
	assert.Equal(t, 2, stored.Bedrooms)
}

func TestProfileUpdateEmptyPatch(t *testing.T) {
	f := newProfileFixture(t)

	_, err := f.svc.Update(context.Background(), nil, "user-jane@example.com", &dto.UpdateProfileRequest{
		Fields: map[string]interface{}{},
	})
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestProfileGetMissing(t *testing.T) {
	f := newProfileFixture(t)

	_, err := f.svc.GetByUserID(context.Background(), nil, "nobody")
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}
