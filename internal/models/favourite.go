package models

// Favourites is a per-user document of saved listings. The document is created
// on first add and removed when its last listing is removed.
type Favourites struct {
	BaseModel
	UserID   string    `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Listings []Listing `gorm:"many2many:favourite_listings" json:"listings"`
}
