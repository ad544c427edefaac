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

func newTransactionFixture(t *testing.T) (*fakeNotifier, TransactionService) {
	t.Helper()
	userRepo := newFakeUserRepo()
	listingRepo := newFakeListingRepo()
	notify := &fakeNotifier{}

	require.NoError(t, userRepo.Create(nil, &models.User{Email: "jane@example.com"}))
	require.NoError(t, listingRepo.Create(nil, &models.Listing{Name: "Loft A", Price: 1200}))

	svc := NewTransactionService(newFakeTransactionRepo(), userRepo, listingRepo, notify)
	return notify, svc
}

func TestTransactionCreateTriggersNotification(t *testing.T) {
	notify, svc := newTransactionFixture(t)

	txn, err := svc.Create(context.Background(), nil, &dto.CreateTransactionRequest{
		UserID:    "user-jane@example.com",
		ListingID: "listing-Loft A",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, txn.ID)

	require.Len(t, notify.triggers, 1)
	trigger := notify.triggers[0]
	assert.Equal(t, notifier.EventTransaction, trigger.Event)
	assert.Equal(t, txn.ID, trigger.Payload["reservation_id"])
	assert.Equal(t, "jane@example.com", trigger.Payload["user_email"])
	assert.Equal(t, "Loft A", trigger.Payload["listing_name"])
	assert.Equal(t, 1200.0, trigger.Payload["amount"])
	assert.NotEmpty(t, trigger.Payload["billed_date"])
}

func TestTransactionCreateUnknownReferents(t *testing.T) {
	_, svc := newTransactionFixture(t)

	_, err := svc.Create(context.Background(), nil, &dto.CreateTransactionRequest{
		UserID: "missing", ListingID: "listing-Loft A",
	})
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPCode)

	_, err = svc.Create(context.Background(), nil, &dto.CreateTransactionRequest{
		UserID: "user-jane@example.com", ListingID: "missing",
	})
	appErr, _ = apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestTransactionGetMissing(t *testing.T) {
	_, svc := newTransactionFixture(t)

	_, err := svc.GetByUserAndListing(context.Background(), nil, "user-jane@example.com", "listing-Loft A")
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}
