package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kora_backend/internal/auth"
	"kora_backend/internal/middleware"
	"kora_backend/internal/services"
	"kora_backend/internal/services/dto"
)

type PropertyTypeHandler struct {
	*BaseHandler
	propertyTypeService services.PropertyTypeService
}

func NewPropertyTypeHandler(base *BaseHandler, propertyTypeService services.PropertyTypeService) *PropertyTypeHandler {
	return &PropertyTypeHandler{
		BaseHandler:         base,
		propertyTypeService: propertyTypeService,
	}
}

func (h *PropertyTypeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	types := rg.Group("/property-types")
	{
		types.POST("", h.Create)
		types.GET("", h.GetAll)
		types.DELETE("/:id", middleware.AuthMiddleware(), middleware.RequireRoles(auth.RoleAdmin), h.Delete)
	}
}

func (h *PropertyTypeHandler) Create(c *gin.Context) {
	var req dto.CreatePropertyTypeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	propertyType, err := h.propertyTypeService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"propertyType": propertyType})
}

func (h *PropertyTypeHandler) GetAll(c *gin.Context) {
	types, err := h.propertyTypeService.GetAll(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"propertyTypes": types})
}

func (h *PropertyTypeHandler) Delete(c *gin.Context) {
	if err := h.propertyTypeService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property type deleted"})
}
