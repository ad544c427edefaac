package models

type Review struct {
	BaseModel
	UserID    string `gorm:"type:uuid;index;not null" json:"userId"`
	ListingID string `gorm:"type:uuid;index;not null" json:"listingId"`
	Rating    int    `gorm:"not null" json:"rating"`
	Comment   string `json:"comment"`
}
