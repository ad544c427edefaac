package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kora_backend/internal/models"
	"kora_backend/internal/repositories"
	"kora_backend/internal/services/dto"
	"kora_backend/pkg/apperrors"
)

// fakeReviewRepo mirrors the repository's rating refresh: every Create and
// Delete recomputes the average on the backing listing repo.
type fakeReviewRepo struct {
	mu          sync.Mutex
	reviews     map[string]*models.Review
	listingRepo *fakeListingRepo
	nextID      int
}

func newFakeReviewRepo(listingRepo *fakeListingRepo) *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review), listingRepo: listingRepo}
}

func (f *fakeReviewRepo) Create(db *gorm.DB, review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return repositories.ErrInvalidReviewRating
	}
	f.mu.Lock()
	f.nextID++
	review.ID = fmt.Sprintf("review-%d", f.nextID)
	f.reviews[review.ID] = review
	f.mu.Unlock()
	return f.refreshRating(review.ListingID)
}

func (f *fakeReviewRepo) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.reviews[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, repositories.ErrReviewNotFound
}

func (f *fakeReviewRepo) FindByListing(db *gorm.DB, listingID string) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Review
	for _, r := range f.reviews {
		if r.ListingID == listingID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Delete(db *gorm.DB, id string) error {
	f.mu.Lock()
	review, ok := f.reviews[id]
	if !ok {
		f.mu.Unlock()
		return repositories.ErrReviewNotFound
	}
	delete(f.reviews, id)
	f.mu.Unlock()
	return f.refreshRating(review.ListingID)
}

func (f *fakeReviewRepo) CalculateListingRating(db *gorm.DB, listingID string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum float64
	var count int
	for _, r := range f.reviews {
		if r.ListingID == listingID {
			sum += float64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}

func (f *fakeReviewRepo) refreshRating(listingID string) error {
	avg, err := f.CalculateListingRating(nil, listingID)
	if err != nil {
		return err
	}
	return f.listingRepo.UpdateRating(nil, listingID, avg)
}

func newReviewFixture(t *testing.T) (ReviewService, *fakeUserRepo, *fakeListingRepo, *fakeReviewRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	listingRepo := newFakeListingRepo()
	reviewRepo := newFakeReviewRepo(listingRepo)
	return NewReviewService(reviewRepo, userRepo, listingRepo), userRepo, listingRepo, reviewRepo
}

func seedReviewer(t *testing.T, userRepo *fakeUserRepo, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email}
	require.NoError(t, userRepo.Create(nil, user))
	return user
}

func seedReviewListing(t *testing.T, listingRepo *fakeListingRepo, name string) *models.Listing {
	t.Helper()
	listing := &models.Listing{Name: name, Price: 900}
	require.NoError(t, listingRepo.Create(nil, listing))
	return listing
}

func TestReviewCreateRefreshesListingRating(t *testing.T) {
	svc, userRepo, listingRepo, _ := newReviewFixture(t)
	user := seedReviewer(t, userRepo, "rater@example.com")
	listing := seedReviewListing(t, listingRepo, "Canal House")

	_, err := svc.Create(context.Background(), nil, &dto.CreateReviewRequest{
		UserID: user.ID, ListingID: listing.ID, Rating: 5, Comment: "Spotless",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), nil, &dto.CreateReviewRequest{
		UserID: user.ID, ListingID: listing.ID, Rating: 2, Comment: "Noisy street",
	})
	require.NoError(t, err)

	got, err := listingRepo.FindByID(nil, listing.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, got.Rating, 0.001)
}

func TestReviewCreateUnknownReferents(t *testing.T) {
	svc, userRepo, listingRepo, _ := newReviewFixture(t)
	user := seedReviewer(t, userRepo, "rater@example.com")
	listing := seedReviewListing(t, listingRepo, "Canal House")

	_, err := svc.Create(context.Background(), nil, &dto.CreateReviewRequest{
		UserID: "missing", ListingID: listing.ID, Rating: 4,
	})
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, "Unknown user", appErr.Message)

	_, err = svc.Create(context.Background(), nil, &dto.CreateReviewRequest{
		UserID: user.ID, ListingID: "missing", Rating: 4,
	})
	appErr, _ = apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Unknown listing", appErr.Message)
}

func TestReviewCreateRatingOutOfRange(t *testing.T) {
	svc, userRepo, listingRepo, _ := newReviewFixture(t)
	user := seedReviewer(t, userRepo, "rater@example.com")
	listing := seedReviewListing(t, listingRepo, "Canal House")

	for _, rating := range []int{0, 6} {
		_, err := svc.Create(context.Background(), nil, &dto.CreateReviewRequest{
			UserID: user.ID, ListingID: listing.ID, Rating: rating,
		})
		appErr, _ := apperrors.AsAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.HTTPCode)
		assert.Equal(t, "Rating must be between 1 and 5", appErr.Message)
	}
}

func TestReviewDeleteRecomputesRating(t *testing.T) {
	svc, userRepo, listingRepo, reviewRepo := newReviewFixture(t)
	user := seedReviewer(t, userRepo, "rater@example.com")
	listing := seedReviewListing(t, listingRepo, "Canal House")

	first, err := svc.Create(context.Background(), nil, &dto.CreateReviewRequest{
		UserID: user.ID, ListingID: listing.ID, Rating: 1,
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), nil, &dto.CreateReviewRequest{
		UserID: user.ID, ListingID: listing.ID, Rating: 5,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), nil, first.ID))

	got, err := listingRepo.FindByID(nil, listing.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got.Rating, 0.001)

	_, err = reviewRepo.FindByID(nil, first.ID)
	assert.Error(t, err)
}

func TestReviewGetByListingEmpty(t *testing.T) {
	svc, _, listingRepo, _ := newReviewFixture(t)
	listing := seedReviewListing(t, listingRepo, "Canal House")

	_, err := svc.GetByListing(context.Background(), nil, listing.ID)
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestReviewDeleteMissing(t *testing.T) {
	svc, _, _, _ := newReviewFixture(t)

	err := svc.Delete(context.Background(), nil, "missing")
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}
