package models

type PropertyType struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
