package dto

type LocationDTO struct {
	Longitude float64 `json:"longitude" validate:"longitude"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
}

type CreateProfileRequest struct {
	UserID        string      `json:"userId" validate:"required"`
	PropertyTypes []string    `json:"propertyType" validate:"required,min=1"`
	Bedrooms      *int        `json:"bedrooms" validate:"required"`
	Pets          *bool       `json:"pets" validate:"required"`
	MinPrice      *float64    `json:"minPrice" validate:"required"`
	MaxPrice      *float64    `json:"maxPrice" validate:"required"`
	Location      LocationDTO `json:"location" validate:"required"`
}

// UpdateProfileRequest carries the raw patch document. Only the keys in the
// allow-list may appear; anything else fails the whole request.
type UpdateProfileRequest struct {
	Fields map[string]interface{}
}
