package models

// Profile captures a user's search preferences. One profile per user.
type Profile struct {
	BaseModel
	UserID        string         `gorm:"type:uuid;index;not null" json:"userId"`
	PropertyTypes []PropertyType `gorm:"many2many:profile_property_types" json:"propertyType"`
	Bedrooms      int            `json:"bedrooms"`
	Pets          bool           `json:"pets"`
	MinPrice      float64        `json:"minPrice"`
	MaxPrice      float64        `json:"maxPrice"`
	Longitude     float64        `json:"longitude"`
	Latitude      float64        `json:"latitude"`
}
