package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kora_backend/internal/middleware"
	"kora_backend/internal/services"
	"kora_backend/internal/services/dto"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/review")
	{
		reviews.POST("", middleware.AuthMiddleware(), h.Create)
		reviews.GET("/:listingId", h.GetByListing)
		reviews.DELETE("/:id", middleware.AuthMiddleware(), h.Delete)
	}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (h *ReviewHandler) GetByListing(c *gin.Context) {
	reviews, err := h.reviewService.GetByListing(c.Request.Context(), h.GetDB(c), c.Param("listingId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviewService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
