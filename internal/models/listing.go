package models

type Listing struct {
	BaseModel
	Name           string       `gorm:"uniqueIndex;not null" json:"name"`
	Description    string       `json:"description"`
	Amenities      []Amenity    `gorm:"many2many:listing_amenities" json:"amenities"`
	PropertyTypeID string       `gorm:"type:uuid" json:"-"`
	PropertyType   PropertyType `json:"propertyType"`
	Longitude      float64      `json:"longitude"`
	Latitude       float64      `json:"latitude"`
	Price          float64      `json:"price"`
	Images         []Attachment `gorm:"many2many:listing_images" json:"images"`
	Rating         float64      `gorm:"default:0" json:"rating"`
}
