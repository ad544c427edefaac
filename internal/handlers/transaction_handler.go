package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kora_backend/internal/middleware"
	"kora_backend/internal/services"
	"kora_backend/internal/services/dto"
)

type TransactionHandler struct {
	*BaseHandler
	transactionService services.TransactionService
}

func NewTransactionHandler(base *BaseHandler, transactionService services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		BaseHandler:        base,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	transactions := rg.Group("/transaction")
	transactions.Use(middleware.AuthMiddleware())
	{
		transactions.POST("", h.Create)
		transactions.GET("/:userId/:listingId", h.GetByUserAndListing)
	}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	transaction, err := h.transactionService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

func (h *TransactionHandler) GetByUserAndListing(c *gin.Context) {
	transaction, err := h.transactionService.GetByUserAndListing(
		c.Request.Context(), h.GetDB(c), c.Param("userId"), c.Param("listingId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}
