package handlers

import "kora_backend/internal/services"

// AppHandlers holds every HTTP handler, wired once at startup.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Profile      *ProfileHandler
	PropertyType *PropertyTypeHandler
	Amenity      *AmenityHandler
	Listing      *ListingHandler
	Review       *ReviewHandler
	Favourites   *FavouritesHandler
	Transaction  *TransactionHandler
}

func NewAppHandlers(svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()
	return &AppHandlers{
		Auth:         NewAuthHandler(base, svc.AuthService),
		User:         NewUserHandler(base, svc.UserService),
		Profile:      NewProfileHandler(base, svc.ProfileService),
		PropertyType: NewPropertyTypeHandler(base, svc.PropertyTypeService),
		Amenity:      NewAmenityHandler(base, svc.AmenityService),
		Listing:      NewListingHandler(base, svc.ListingService),
		Review:       NewReviewHandler(base, svc.ReviewService),
		Favourites:   NewFavouritesHandler(base, svc.FavouritesService),
		Transaction:  NewTransactionHandler(base, svc.TransactionService),
	}
}
