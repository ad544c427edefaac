package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kora_backend/internal/config"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the payload of both access and verification tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Roles  []int  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a session token carrying the user's id and roles.
func GenerateAccessToken(userID string, roles []int) (string, error) {
	cfg := config.GetConfig()
	ttl := time.Duration(cfg.JWT.AccessTTLMin) * time.Minute
	return generate(userID, roles, cfg.JWT.AccessSecret, ttl)
}

// GenerateVerifyToken signs a short-lived token embedded in the
// account-verification link. It uses a separate secret so a leaked
// verification link can never act as a session.
func GenerateVerifyToken(userID string) (string, error) {
	cfg := config.GetConfig()
	ttl := time.Duration(cfg.JWT.VerifyTTLMin) * time.Minute
	return generate(userID, nil, cfg.JWT.VerifySecret, ttl)
}

func generate(userID string, roles []int, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken validates a session token and returns its claims.
func ParseAccessToken(tokenString string) (*Claims, error) {
	return parse(tokenString, config.GetConfig().JWT.AccessSecret)
}

// ParseVerifyToken validates an account-verification token.
func ParseVerifyToken(tokenString string) (*Claims, error) {
	return parse(tokenString, config.GetConfig().JWT.VerifySecret)
}

func parse(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
