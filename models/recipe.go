package models

import "time"

// Recipe is one preparation step of a Food. StepOrder defines the rendering
// sequence and is unique within a food.
type Recipe struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	FoodID         uint   `gorm:"not null;index" json:"food_id"`
	IngredientName string `gorm:"not null" json:"ingredient_name"`
	Quantity       string `gorm:"not null" json:"quantity"` // free text: "200gr", "1 adet"
	StepOrder      int    `gorm:"not null" json:"step_order"`
	Instruction    string `gorm:"type:text" json:"instruction,omitempty"`

	Translations []RecipeTranslation `gorm:"constraint:OnDelete:CASCADE;" json:"translations"`
	Allergens    []Allergen          `gorm:"many2many:recipe_allergens;" json:"allergens"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// One translation per (recipe, language) pair.
type RecipeTranslation struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	RecipeID       uint     `gorm:"uniqueIndex:idx_recipe_language;not null" json:"recipe_id"`
	LanguageID     uint     `gorm:"uniqueIndex:idx_recipe_language;not null" json:"language_id"`
	Language       Language `json:"language"`
	IngredientName string   `gorm:"not null" json:"ingredient_name"`
	Instruction    string   `gorm:"type:text" json:"instruction,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
