package models

// Attachment kinds.
const (
	AttachmentKindAmenityIcon = "amenity_icon"
	AttachmentKindListingImg  = "listing_img"
)

// Attachment is a file stored in the object store. PublicID is the store key
// used for remote deletion.
type Attachment struct {
	BaseModel
	FileURL  string `gorm:"not null" json:"fileUrl"`
	FileType string `json:"fileType"`
	FileName string `json:"fileName"`
	PublicID string `gorm:"not null" json:"public_id"`
	Kind     string `gorm:"index" json:"-"`
}
