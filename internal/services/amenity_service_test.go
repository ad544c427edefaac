package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kora_backend/internal/models"
	"kora_backend/pkg/apperrors"
)

func seedAmenity(t *testing.T, repo *fakeAmenityRepo, name, publicID string) string {
	t.Helper()
	icon := models.Attachment{PublicID: publicID}
	icon.ID = "att-" + publicID
	amenity := &models.Amenity{Name: name, IconID: icon.ID, Icon: icon}
	require.NoError(t, repo.Create(nil, amenity))
	return amenity.ID
}

func TestAmenityDeleteRemoteFirst(t *testing.T) {
	amenityRepo := newFakeAmenityRepo()
	media := newFakeMediaService()
	svc := NewAmenityService(amenityRepo, media)

	id := seedAmenity(t, amenityRepo, "Pool", "amenities/pool.png")

	require.NoError(t, svc.Delete(context.Background(), nil, id))
	assert.Equal(t, []string{"amenities/pool.png"}, media.remoteDeletes)

	_, err := amenityRepo.FindByID(nil, id)
	assert.Error(t, err)
}

func TestAmenityDeleteKeepsRowsOnRemoteFailure(t *testing.T) {
	amenityRepo := newFakeAmenityRepo()
	media := newFakeMediaService()
	svc := NewAmenityService(amenityRepo, media)

	id := seedAmenity(t, amenityRepo, "Pool", "amenities/pool.png")
	media.failRemoteFor["amenities/pool.png"] = errors.New("store unavailable")

	err := svc.Delete(context.Background(), nil, id)
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 500, appErr.HTTPCode)

	// The local rows survive a failed remote delete.
	_, err = amenityRepo.FindByID(nil, id)
	assert.NoError(t, err)
}

func TestAmenityGetAllEmpty(t *testing.T) {
	svc := NewAmenityService(newFakeAmenityRepo(), newFakeMediaService())

	_, err := svc.GetAll(context.Background(), nil)
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}
