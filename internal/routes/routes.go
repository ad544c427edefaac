package routes

import (
	"github.com/gin-gonic/gin"

	"kora_backend/internal/handlers"
)

// RegisterRoutes mounts every handler on the engine root. Paths match the
// public API contract, so there is no version prefix.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("")
	{
		appHandlers.Auth.RegisterRoutes(root)
		appHandlers.User.RegisterRoutes(root)
		appHandlers.Profile.RegisterRoutes(root)
		appHandlers.PropertyType.RegisterRoutes(root)
		appHandlers.Amenity.RegisterRoutes(root)
		appHandlers.Listing.RegisterRoutes(root)
		appHandlers.Review.RegisterRoutes(root)
		appHandlers.Favourites.RegisterRoutes(root)
		appHandlers.Transaction.RegisterRoutes(root)
	}
}
