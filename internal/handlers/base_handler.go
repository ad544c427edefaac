package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kora_backend/internal/logger"
	"kora_backend/internal/validator"
	"kora_backend/pkg/apperrors"
	"kora_backend/pkg/contextkeys"
)

type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// GetDB pulls the *gorm.DB handle (pool or test transaction) that
// DBMiddleware stored on the request.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	val, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context")
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context has wrong type", "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}
	return db
}

// BindAndValidateJSON binds the JSON body into obj and validates it. On
// failure the error response is already written and false is returned.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := validator.ValidateStruct(obj); err != nil {
		logger.CtxWarn(ctx, "Validation failed", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError(err.Error()))
		return false
	}
	return true
}

// BindAndValidateForm does the same for multipart/form bodies.
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind form body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := validator.ValidateStruct(obj); err != nil {
		logger.CtxWarn(ctx, "Validation failed", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError(err.Error()))
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}
