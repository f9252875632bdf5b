package models

import "time"

// Role names seeded at deployment. Business logic compares these names,
// never raw role ids.
const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleDealer = "dealer"
)

type Role struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`

	Users        []User            `json:"-"`
	Translations []RoleTranslation `json:"translations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleTranslation localizes a role's display name per language.
type RoleTranslation struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoleID     uint   `gorm:"not null;uniqueIndex:idx_role_language" json:"role_id"`
	LanguageID uint   `gorm:"not null;uniqueIndex:idx_role_language" json:"language_id"`
	Name       string `gorm:"not null" json:"name"`

	Language Language `json:"language,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
