package dto

type CreatePropertyTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateAmenityRequest struct {
	Name string `form:"name" validate:"required"`
}

type CreateListingRequest struct {
	Name           string   `form:"name" validate:"required"`
	Description    string   `form:"description"`
	Amenities      []string `form:"amenities"`
	PropertyTypeID string   `form:"propertyType" validate:"required"`
	Longitude      float64  `form:"longitude" validate:"longitude"`
	Latitude       float64  `form:"latitude" validate:"latitude"`
	Price          float64  `form:"price" validate:"required,gt=0"`
}

type CreateReviewRequest struct {
	UserID    string `json:"userId" validate:"required"`
	ListingID string `json:"listingId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type FavouriteRequest struct {
	UserID    string `json:"userId" validate:"required"`
	ListingID string `json:"listingId" validate:"required"`
}

type CreateTransactionRequest struct {
	UserID    string  `json:"userId" validate:"required"`
	ListingID string  `json:"listingId" validate:"required"`
	Amount    float64 `json:"amount"`
}
