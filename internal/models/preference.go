package models

import "time"

// Preference defaults returned when a user never saved anything.
const (
	DefaultUserName       = "Not provided"
	DefaultPreferredRoles = "Not specified"
)

type Preference struct {
	UserID         string    `gorm:"type:text;primary_key" json:"user_id"`
	Name           string    `gorm:"type:text" json:"name"`
	PreferredRoles string    `gorm:"type:text" json:"preferred_roles"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Preference) TableName() string {
	return "preferences"
}
