package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kora_backend/internal/config"
	"kora_backend/internal/services"
	"kora_backend/internal/services/dto"
)

const accessTokenCookie = "accessToken"

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth/user")
	{
		auth.POST("/signup", h.Signup)
		auth.GET("/verify-account/:token", h.VerifyAccount)
		auth.POST("/login", h.Login)
		auth.GET("/logout", h.Logout)
		auth.POST("/forgotpassword", h.ForgotPassword)
		auth.POST("/resetpassword", h.ResetPassword)
		auth.PATCH("/changepassword", h.ChangePassword)
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// VerifyAccount completes email verification and sends the browser to the
// frontend login page.
func (h *AuthHandler) VerifyAccount(c *gin.Context) {
	token := c.Param("token")

	if err := h.authService.VerifyAccount(c.Request.Context(), h.GetDB(c), token); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, config.GetConfig().URLs.Frontend+"/login")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setAccessCookie(c, resp.AccessToken)
	c.JSON(http.StatusOK, resp)
}

// Logout clears the session cookie. Issued tokens stay valid until expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	cfg := config.GetConfig()
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(accessTokenCookie, "", -1, "/", "", cfg.JWT.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), h.GetDB(c), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

func (h *AuthHandler) setAccessCookie(c *gin.Context, token string) {
	cfg := config.GetConfig()
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(accessTokenCookie, token, cfg.JWT.CookieMaxAge, "/", "", cfg.JWT.CookieSecure, true)
}
