package models

import "time"

// Food is the aggregate root of a menu entry. It owns its recipes and
// translations exclusively; allergens are shared catalog references.
type Food struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null;index" json:"name"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"not null" json:"category"`
	DealerID    uint    `gorm:"not null" json:"dealer_id"`
	IsActive    bool    `gorm:"not null;default:true" json:"is_active"`

	Tags []string `gorm:"serializer:json" json:"tags"`

	Recipes      []Recipe          `gorm:"constraint:OnDelete:CASCADE;" json:"recipes"`
	Translations []FoodTranslation `gorm:"constraint:OnDelete:CASCADE;" json:"translations"`
	Allergens    []Allergen        `gorm:"many2many:food_allergens;" json:"allergens"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// One translation per (food, language) pair.
type FoodTranslation struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	FoodID      uint     `gorm:"uniqueIndex:idx_food_language;not null" json:"food_id"`
	LanguageID  uint     `gorm:"uniqueIndex:idx_food_language;not null" json:"language_id"`
	Language    Language `json:"language"`
	Name        string   `gorm:"not null" json:"name"`
	Description string   `gorm:"type:text" json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
