package models

import "time"

// Allergen is a canonical catalog record shared by foods and recipes through
// the food_allergens and recipe_allergens join tables.
type Allergen struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"uniqueIndex;not null" json:"code"`
	Icon string `json:"icon,omitempty"`

	Translations []AllergenTranslation `json:"translations"`
	Foods        []Food                `gorm:"many2many:food_allergens;" json:"-"`
	Recipes      []Recipe              `gorm:"many2many:recipe_allergens;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// One translation per (allergen, language) pair.
type AllergenTranslation struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	AllergenID uint     `gorm:"uniqueIndex:idx_allergen_language;not null" json:"allergen_id"`
	LanguageID uint     `gorm:"uniqueIndex:idx_allergen_language;not null" json:"language_id"`
	Language   Language `json:"language"`
	Name       string   `gorm:"not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
