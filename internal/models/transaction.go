package models

// Transaction records a reservation. Insert-only.
type Transaction struct {
	BaseModel
	UserID    string  `gorm:"type:uuid;index;not null" json:"userId"`
	ListingID string  `gorm:"type:uuid;index;not null" json:"listingId"`
	User      User    `json:"-"`
	Listing   Listing `json:"-"`
}
