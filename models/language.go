package models

import "time"

// Language is the registry of active locales. Seeded at deployment and
// referenced by id from every translation table.
type Language struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Code       string `gorm:"type:varchar(5);uniqueIndex;not null" json:"code"` // tr, en, de, fr
	Name       string `gorm:"not null" json:"name"`
	NativeName string `json:"native_name"`
	IsActive   bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
