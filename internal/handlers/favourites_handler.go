package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kora_backend/internal/middleware"
	"kora_backend/internal/services"
	"kora_backend/internal/services/dto"
)

type FavouritesHandler struct {
	*BaseHandler
	favouritesService services.FavouritesService
}

func NewFavouritesHandler(base *BaseHandler, favouritesService services.FavouritesService) *FavouritesHandler {
	return &FavouritesHandler{
		BaseHandler:       base,
		favouritesService: favouritesService,
	}
}

func (h *FavouritesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	favourites := rg.Group("/favorites")
	favourites.Use(middleware.AuthMiddleware())
	{
		favourites.POST("", h.Add)
		favourites.DELETE("", h.Remove)
		favourites.GET("/:userId", h.GetByUserID)
	}
}

func (h *FavouritesHandler) Add(c *gin.Context) {
	var req dto.FavouriteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	fav, err := h.favouritesService.Add(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": fav})
}

func (h *FavouritesHandler) Remove(c *gin.Context) {
	var req dto.FavouriteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	fav, err := h.favouritesService.Remove(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": fav})
}

func (h *FavouritesHandler) GetByUserID(c *gin.Context) {
	fav, err := h.favouritesService.GetByUserID(c.Request.Context(), h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": fav})
}
