package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// User is an account holder. Roles is a JSON document of role name → numeric
// code, e.g. {"User": 2001}.
type User struct {
	BaseModel
	Email           string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string         `gorm:"not null" json:"-"`
	PhoneNo         string         `gorm:"not null" json:"phoneNo"`
	Roles           datatypes.JSON `gorm:"not null" json:"roles"`
	IsVerified      bool           `gorm:"default:false" json:"isVerified"`
	AccountDisabled bool           `gorm:"default:false" json:"accountDisabled"`
	OTP             *string        `json:"-"`
	OTPExpiresAt    *time.Time     `json:"-"`
}

// RoleCodes extracts the numeric codes from the Roles document.
func (u *User) RoleCodes() []int {
	var roles map[string]int
	if err := json.Unmarshal(u.Roles, &roles); err != nil {
		return nil
	}
	codes := make([]int, 0, len(roles))
	for _, code := range roles {
		codes = append(codes, code)
	}
	return codes
}

// RolesDocument builds the Roles JSON column value from a name → code map.
func RolesDocument(roles map[string]int) datatypes.JSON {
	raw, _ := json.Marshal(roles)
	return datatypes.JSON(raw)
}

