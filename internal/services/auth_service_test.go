package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kora_backend/internal/auth"
	"kora_backend/internal/models"
	"kora_backend/internal/notifier"
	"kora_backend/internal/services/dto"
	"kora_backend/pkg/apperrors"
)

func newAuthFixture() (*fakeUserRepo, *fakeNotifier, AuthService) {
	userRepo := newFakeUserRepo()
	notify := &fakeNotifier{}
	svc := NewAuthService(userRepo, notify, "http://localhost:5500")
	return userRepo, notify, svc
}

func signupReq() *dto.SignupRequest {
	return &dto.SignupRequest{
		Email:    "jane@example.com",
		Password: "secret123",
		PhoneNo:  "+123456789",
	}
}

func TestSignupStoresHashedPassword(t *testing.T) {
	_, notify, svc := newAuthFixture()

	user, err := svc.Signup(context.Background(), nil, signupReq())
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, auth.CheckPassword("secret123", user.PasswordHash))
	assert.False(t, user.IsVerified)
	assert.Equal(t, []int{auth.RoleUser}, user.RoleCodes())

	require.Len(t, notify.triggers, 1)
	assert.Equal(t, notifier.EventVerifyAccount, notify.triggers[0].Event)
	assert.Contains(t, notify.triggers[0].Payload["LINK"], "/auth/user/verify-account/")
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	_, _, svc := newAuthFixture()

	_, err := svc.Signup(context.Background(), nil, signupReq())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), nil, signupReq())
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
	assert.Equal(t, "User already exists", appErr.Message)
}

func TestLoginMatrix(t *testing.T) {
	userRepo, _, svc := newAuthFixture()

	user, err := svc.Signup(context.Background(), nil, signupReq())
	require.NoError(t, err)

	// Unverified account is rejected even with the right password.
	_, err = svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email: "jane@example.com", Password: "secret123",
	})
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 403, appErr.HTTPCode)

	require.NoError(t, userRepo.SetVerified(nil, user.ID))

	// Wrong password and unknown email look identical.
	_, err = svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email: "jane@example.com", Password: "wrong",
	})
	appErr, _ = apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPCode)

	_, err = svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email: "nobody@example.com", Password: "secret123",
	})
	appErr, _ = apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPCode)
	assert.Equal(t, "Invalid email or password", appErr.Message)

	// Happy path returns a parseable session token with role codes.
	resp, err := svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email: "jane@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	claims, err := auth.ParseAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, []int{auth.RoleUser}, claims.Roles)
}

func TestLoginDisabledAccount(t *testing.T) {
	userRepo, _, svc := newAuthFixture()

	user, err := svc.Signup(context.Background(), nil, signupReq())
	require.NoError(t, err)
	require.NoError(t, userRepo.SetVerified(nil, user.ID))

	stored, _ := userRepo.FindByID(nil, user.ID)
	stored.AccountDisabled = true
	require.NoError(t, userRepo.Update(nil, stored))

	_, err = svc.Login(context.Background(), nil, &dto.LoginRequest{
		Email: "jane@example.com", Password: "secret123",
	})
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 403, appErr.HTTPCode)
	assert.Equal(t, "Account disabled", appErr.Message)
}

func TestVerifyAccountRoundTrip(t *testing.T) {
	userRepo, _, svc := newAuthFixture()

	user, err := svc.Signup(context.Background(), nil, signupReq())
	require.NoError(t, err)

	token, err := auth.GenerateVerifyToken(user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.VerifyAccount(context.Background(), nil, token))

	stored, err := userRepo.FindByID(nil, user.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)
}

func TestVerifyAccountGarbageToken(t *testing.T) {
	_, _, svc := newAuthFixture()

	err := svc.VerifyAccount(context.Background(), nil, "not-a-jwt")
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 500, appErr.HTTPCode)
}

func TestForgotPasswordSetsOTPAndNotifies(t *testing.T) {
	userRepo, notify, svc := newAuthFixture()

	user, err := svc.Signup(context.Background(), nil, signupReq())
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(context.Background(), nil, "jane@example.com"))

	stored, _ := userRepo.FindByID(nil, user.ID)
	require.NotNil(t, stored.OTP)
	assert.Len(t, *stored.OTP, 5)
	require.NotNil(t, stored.OTPExpiresAt)
	assert.WithinDuration(t, time.Now().Add(otpTTL), *stored.OTPExpiresAt, 5*time.Second)

	var forgot *recordedTrigger
	for i := range notify.triggers {
		if notify.triggers[i].Event == notifier.EventForgotPassword {
			forgot = &notify.triggers[i]
		}
	}
	require.NotNil(t, forgot)
	assert.Equal(t, *stored.OTP, forgot.Payload["OTP"])
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	_, _, svc := newAuthFixture()

	err := svc.ForgotPassword(context.Background(), nil, "nobody@example.com")
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestResetPasswordRejectsWrongOTP(t *testing.T) {
	userRepo, _, svc := newAuthFixture()

	user, err := svc.Signup(context.Background(), nil, signupReq())
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(context.Background(), nil, "jane@example.com"))

	before, _ := userRepo.FindByID(nil, user.ID)

	err = svc.ResetPassword(context.Background(), nil, &dto.ResetPasswordRequest{
		Email: "jane@example.com", OTP: "00000", NewPassword: "newpass99",
	})
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, "Invalid otp", appErr.Message)

	// The rejection must stop the flow: password unchanged.
	after, _ := userRepo.FindByID(nil, user.ID)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestResetPasswordRejectsExpiredOTP(t *testing.T) {
	userRepo, _, svc := newAuthFixture()

	user, err := svc.Signup(context.Background(), nil, signupReq())
	require.NoError(t, err)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, userRepo.SetOTP(nil, user.ID, "12345", expired))

	err = svc.ResetPassword(context.Background(), nil, &dto.ResetPasswordRequest{
		Email: "jane@example.com", OTP: "12345", NewPassword: "newpass99",
	})
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Invalid otp", appErr.Message)
}

func TestChangePassword(t *testing.T) {
	userRepo, _, svc := newAuthFixture()

	user, err := svc.Signup(context.Background(), nil, signupReq())
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), nil, &dto.ChangePasswordRequest{
		UserID: user.ID, CurrentPassword: "wrong", NewPassword: "newpass99",
	})
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPCode)

	err = svc.ChangePassword(context.Background(), nil, &dto.ChangePasswordRequest{
		UserID: user.ID, CurrentPassword: "secret123", NewPassword: "newpass99",
	})
	require.NoError(t, err)

	stored, _ := userRepo.FindByID(nil, user.ID)
	assert.True(t, auth.CheckPassword("newpass99", stored.PasswordHash))
}

func TestChangePasswordUnknownUser(t *testing.T) {
	_, _, svc := newAuthFixture()

	err := svc.ChangePassword(context.Background(), nil, &dto.ChangePasswordRequest{
		UserID: "missing", CurrentPassword: "x", NewPassword: "newpass99",
	})
	appErr, _ := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestUserJSONNeverLeaksHash(t *testing.T) {
	user := &models.User{
		Email:        "jane@example.com",
		PasswordHash: "$2a$10$something",
		Roles:        models.RolesDocument(map[string]int{"User": auth.RoleUser}),
	}
	raw := toJSON(t, user)
	assert.NotContains(t, raw, "$2a$10$something")
	assert.NotContains(t, raw, "passwordHash")
}
