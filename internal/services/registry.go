package services

// ServiceContainer holds every application service, wired once at startup.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	ProfileService      ProfileService
	PropertyTypeService PropertyTypeService
	AmenityService      AmenityService
	ListingService      ListingService
	ReviewService       ReviewService
	FavouritesService   FavouritesService
	TransactionService  TransactionService
	MediaService        MediaService
}
