package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kora_backend/internal/middleware"
	"kora_backend/internal/services"
	"kora_backend/internal/services/dto"
	"kora_backend/pkg/apperrors"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profile")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.POST("", h.Create)
		profiles.GET("", h.GetAll)
		profiles.GET("/:userId", h.GetByUserID)
		profiles.PATCH("/:userId", h.Update)
	}
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req dto.CreateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

func (h *ProfileHandler) GetAll(c *gin.Context) {
	profiles, err := h.profileService.GetAll(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	profile, err := h.profileService.GetByUserID(c.Request.Context(), h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Update accepts a free-form patch document; the service enforces the
// allow-list.
func (h *ProfileHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), h.GetDB(c), c.Param("userId"),
		&dto.UpdateProfileRequest{Fields: fields})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
