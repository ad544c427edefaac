package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kora_backend/internal/auth"
	"kora_backend/internal/middleware"
	"kora_backend/internal/services"
	"kora_backend/internal/services/dto"
	"kora_backend/pkg/apperrors"
)

type AmenityHandler struct {
	*BaseHandler
	amenityService services.AmenityService
}

func NewAmenityHandler(base *BaseHandler, amenityService services.AmenityService) *AmenityHandler {
	return &AmenityHandler{
		BaseHandler:    base,
		amenityService: amenityService,
	}
}

func (h *AmenityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	amenities := rg.Group("/amenities")
	{
		amenities.POST("", h.Create)
		amenities.GET("", h.GetAll)
		amenities.DELETE("/:id", middleware.AuthMiddleware(), middleware.RequireRoles(auth.RoleAdmin), h.Delete)
	}
}

// Create expects a multipart form with a "name" field and a single "icon" file.
func (h *AmenityHandler) Create(c *gin.Context) {
	var req dto.CreateAmenityRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	icon, err := c.FormFile("icon")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNoFileUploaded)
		return
	}

	amenity, err := h.amenityService.Create(c.Request.Context(), h.GetDB(c), &req, icon)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"amenity": amenity})
}

func (h *AmenityHandler) GetAll(c *gin.Context) {
	amenities, err := h.amenityService.GetAll(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"amenities": amenities})
}

func (h *AmenityHandler) Delete(c *gin.Context) {
	if err := h.amenityService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Amenity deleted"})
}
