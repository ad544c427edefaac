package models

type Amenity struct {
	BaseModel
	Name   string     `gorm:"uniqueIndex;not null" json:"name"`
	IconID string     `gorm:"type:uuid;not null" json:"-"`
	Icon   Attachment `gorm:"foreignKey:IconID" json:"icon"`
}
