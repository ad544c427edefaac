package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kora_backend/internal/auth"
	"kora_backend/internal/logger"
	"kora_backend/pkg/apperrors"
)

const accessTokenCookie = "accessToken"

// AuthMiddleware checks the accessToken cookie first and falls back to a
// Bearer header. Missing credentials are 401, a bad or expired token 403.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization required"))
			c.Abort()
			return
		}

		claims, err := auth.ParseAccessToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Invalid Token"))
			c.Abort()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("userID", claims.UserID)
		c.Set("roles", claims.Roles)
		c.Next()
	}
}

// RequireRoles rejects requests whose role codes do not intersect the allowed
// set.
func RequireRoles(allowed ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		rolesVal, exists := c.Get("roles")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied: no roles"})
			return
		}

		roles, ok := rolesVal.([]int)
		if !ok || !auth.HasAnyRole(roles, allowed...) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied: insufficient role"})
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user's id, or "" outside auth routes.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}
	id, _ := userID.(string)
	return id
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(accessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
