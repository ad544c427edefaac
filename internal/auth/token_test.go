package auth

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kora_backend/internal/config"
)

func TestMain(m *testing.M) {
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("ACCESS_TOKEN_SECRET", "test-access-secret")
	os.Setenv("VERIFY_ACCOUNT_SECRET", "test-verify-secret")
	config.LoadConfig()
	os.Exit(m.Run())
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("user-1", []int{RoleUser, RoleAdmin})
	require.NoError(t, err)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, []int{RoleUser, RoleAdmin}, claims.Roles)
}

func TestVerifyTokenUsesSeparateSecret(t *testing.T) {
	verifyToken, err := GenerateVerifyToken("user-1")
	require.NoError(t, err)

	// A verification token must never pass as a session token.
	_, err = ParseAccessToken(verifyToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := ParseVerifyToken(verifyToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestParseGarbageToken(t *testing.T) {
	_, err := ParseAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHasAnyRole(t *testing.T) {
	assert.True(t, HasAnyRole([]int{RoleUser}, RoleUser, RoleAdmin))
	assert.True(t, HasAnyRole([]int{RoleUser, RoleGroupAdmin}, RoleGroupAdmin))
	assert.False(t, HasAnyRole([]int{RoleUser}, RoleAdmin))
	assert.False(t, HasAnyRole(nil, RoleAdmin))
	assert.False(t, HasAnyRole([]int{RoleUser}))
}
