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

type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	listings := rg.Group("/listings")
	{
		listings.POST("", h.Create)
		listings.GET("", h.GetAll)
		listings.GET("/:id", h.GetByID)
		listings.DELETE("/:id", middleware.AuthMiddleware(), middleware.RequireRoles(auth.RoleAdmin), h.Delete)
	}
}

// Create expects a multipart form with listing fields and one or two
// "listingImg" files.
func (h *ListingHandler) Create(c *gin.Context) {
	var req dto.CreateListingRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart form: "+err.Error()))
		return
	}
	images := form.File["listingImg"]

	listing, err := h.listingService.Create(c.Request.Context(), h.GetDB(c), &req, images)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"listing": listing})
}

func (h *ListingHandler) GetAll(c *gin.Context) {
	listings, err := h.listingService.GetAll(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func (h *ListingHandler) GetByID(c *gin.Context) {
	listing, err := h.listingService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

func (h *ListingHandler) Delete(c *gin.Context) {
	if err := h.listingService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}
