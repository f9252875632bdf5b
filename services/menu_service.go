package services

import (
	"errors"

	"github.com/gueleresra1/Yemeksystem/apperrors"
	"github.com/gueleresra1/Yemeksystem/logger"
	"github.com/gueleresra1/Yemeksystem/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MenuService owns the composition of a Food together with its recipes,
// translations and allergen links. Every mutation runs in one transaction so
// a partially written aggregate is never visible.
type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

type TranslationInput struct {
	LanguageID  uint   `json:"language_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type RecipeTranslationInput struct {
	LanguageID     uint   `json:"language_id" binding:"required"`
	IngredientName string `json:"ingredient_name" binding:"required"`
	Instruction    string `json:"instruction"`
}

type RecipeInput struct {
	IngredientName string                   `json:"ingredient_name" binding:"required"`
	Quantity       string                   `json:"quantity" binding:"required"`
	StepOrder      int                      `json:"step_order"`
	Instruction    string                   `json:"instruction"`
	Translations   []RecipeTranslationInput `json:"translations"`
	AllergenIDs    []uint                   `json:"allergen_ids"`
}

type FoodInput struct {
	Name         string             `json:"name" binding:"required"`
	Description  string             `json:"description"`
	Price        float64            `json:"price" binding:"required"`
	Category     string             `json:"category" binding:"required"`
	Tags         []string           `json:"tags"`
	Translations []TranslationInput `json:"translations"`
	Recipes      []RecipeInput      `json:"recipes"`
	AllergenIDs  []uint             `json:"allergen_ids"`
}

type FoodFilter struct {
	Category   string
	DealerID   uint
	ActiveOnly bool
	Limit      int
	Offset     int
}

// CreateFood inserts a Food with all of its recipes, translations and
// allergen links as one unit. Only dealers may publish foods.
func (s *MenuService) CreateFood(actor CurrentUser, input FoodInput) (*models.Food, error) {
	if !actor.IsDealer() {
		return nil, apperrors.Forbidden("only dealers can create foods")
	}

	if err := validateFoodInput(input); err != nil {
		return nil, err
	}

	var foodID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		languages, allergens, err := resolveReferences(tx, input)
		if err != nil {
			return err
		}

		food := models.Food{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Category:    input.Category,
			Tags:        dedupeStrings(input.Tags),
			DealerID:    actor.ID,
			IsActive:    true,
		}
		if err := tx.Create(&food).Error; err != nil {
			return err
		}

		if err := insertFoodChildren(tx, &food, input, languages, allergens); err != nil {
			return err
		}

		foodID = food.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("food created",
		zap.Uint("food_id", foodID),
		zap.Uint("dealer_id", actor.ID),
		zap.Int("recipes", len(input.Recipes)))

	return s.GetFood(foodID)
}

// UpdateFood updates the scalar fields and replaces the entire recipe list,
// translation set and allergen set with the submitted payload. Replacement is
// a deliberate delete-then-insert so the final state exactly matches the
// input; no diffing is attempted.
func (s *MenuService) UpdateFood(actor CurrentUser, foodID uint, input FoodInput) (*models.Food, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var food models.Food
		if err := tx.First(&food, foodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("food %d not found", foodID)
			}
			return err
		}

		if food.DealerID != actor.ID && !actor.IsAdmin() {
			return apperrors.Forbidden("not allowed to update this food")
		}

		// Existence and ownership are settled first so an unauthorized caller
		// learns nothing about the payload's validity.
		if err := validateFoodInput(input); err != nil {
			return err
		}

		languages, allergens, err := resolveReferences(tx, input)
		if err != nil {
			return err
		}

		food.Name = input.Name
		food.Description = input.Description
		food.Price = input.Price
		food.Category = input.Category
		food.Tags = dedupeStrings(input.Tags)
		if err := tx.Save(&food).Error; err != nil {
			return err
		}

		if err := deleteFoodChildren(tx, food.ID); err != nil {
			return err
		}

		return insertFoodChildren(tx, &food, input, languages, allergens)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("food updated", zap.Uint("food_id", foodID), zap.Uint("actor_id", actor.ID))

	return s.GetFood(foodID)
}

// DeleteFood soft-deletes: the row survives with is_active=false. Hard
// deletion of recipes/translations only ever happens through UpdateFood's
// replace path.
func (s *MenuService) DeleteFood(actor CurrentUser, foodID uint) error {
	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("food %d not found", foodID)
		}
		return err
	}

	if food.DealerID != actor.ID && !actor.IsAdmin() {
		return apperrors.Forbidden("not allowed to delete this food")
	}

	food.IsActive = false
	if err := s.db.Save(&food).Error; err != nil {
		return err
	}

	logger.Info("food deactivated", zap.Uint("food_id", foodID), zap.Uint("actor_id", actor.ID))
	return nil
}

// GetFood returns the fully hydrated aggregate. Reads are public; soft-deleted
// foods are still returned here.
func (s *MenuService) GetFood(foodID uint) (*models.Food, error) {
	var food models.Food
	err := hydrated(s.db).First(&food, foodID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("food %d not found", foodID)
		}
		return nil, err
	}
	return &food, nil
}

func (s *MenuService) ListFoods(filter FoodFilter) ([]models.Food, error) {
	q := hydrated(s.db).Order("foods.id")

	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.DealerID != 0 {
		q = q.Where("dealer_id = ?", filter.DealerID)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var foods []models.Food
	if err := q.Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// ListDealerFoods returns the actor's own foods, active or not.
func (s *MenuService) ListDealerFoods(actor CurrentUser) ([]models.Food, error) {
	if !actor.IsDealer() {
		return nil, apperrors.Forbidden("only dealers have their own food list")
	}

	var foods []models.Food
	err := hydrated(s.db).
		Where("dealer_id = ?", actor.ID).
		Order("foods.id").
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

func hydrated(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Recipes", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipes.step_order ASC")
		}).
		Preload("Recipes.Translations").
		Preload("Recipes.Translations.Language").
		Preload("Recipes.Allergens").
		Preload("Translations").
		Preload("Translations.Language").
		Preload("Allergens")
}

func validateFoodInput(input FoodInput) error {
	if input.Name == "" {
		return apperrors.Validation("name is required")
	}
	if input.Category == "" {
		return apperrors.Validation("category is required")
	}
	if input.Price <= 0 {
		return apperrors.Validation("price must be greater than zero")
	}

	seenLang := make(map[uint]bool)
	for _, tr := range input.Translations {
		if seenLang[tr.LanguageID] {
			return apperrors.Conflict("duplicate translation for language %d", tr.LanguageID)
		}
		seenLang[tr.LanguageID] = true
	}

	seenOrder := make(map[int]bool)
	for _, r := range input.Recipes {
		if seenOrder[r.StepOrder] {
			return apperrors.Validation("duplicate step_order %d", r.StepOrder)
		}
		seenOrder[r.StepOrder] = true

		seen := make(map[uint]bool)
		for _, tr := range r.Translations {
			if seen[tr.LanguageID] {
				return apperrors.Conflict("duplicate recipe translation for language %d", tr.LanguageID)
			}
			seen[tr.LanguageID] = true
		}
	}

	return nil
}

// resolveReferences loads every language and allergen the input points at,
// failing with InvalidReference on the first unknown id.
func resolveReferences(tx *gorm.DB, input FoodInput) (map[uint]models.Language, map[uint]models.Allergen, error) {
	langIDs := make([]uint, 0)
	for _, tr := range input.Translations {
		langIDs = append(langIDs, tr.LanguageID)
	}
	allergenIDs := append([]uint{}, input.AllergenIDs...)
	for _, r := range input.Recipes {
		for _, tr := range r.Translations {
			langIDs = append(langIDs, tr.LanguageID)
		}
		allergenIDs = append(allergenIDs, r.AllergenIDs...)
	}

	languages := make(map[uint]models.Language)
	if len(langIDs) > 0 {
		var rows []models.Language
		if err := tx.Where("id IN ?", langIDs).Find(&rows).Error; err != nil {
			return nil, nil, err
		}
		for _, l := range rows {
			languages[l.ID] = l
		}
		for _, id := range langIDs {
			if _, ok := languages[id]; !ok {
				return nil, nil, apperrors.InvalidReference("language %d not found", id)
			}
		}
	}

	allergens := make(map[uint]models.Allergen)
	if len(allergenIDs) > 0 {
		var rows []models.Allergen
		if err := tx.Where("id IN ?", allergenIDs).Find(&rows).Error; err != nil {
			return nil, nil, err
		}
		for _, a := range rows {
			allergens[a.ID] = a
		}
		for _, id := range allergenIDs {
			if _, ok := allergens[id]; !ok {
				return nil, nil, apperrors.InvalidReference("allergen %d not found", id)
			}
		}
	}

	return languages, allergens, nil
}

// insertFoodChildren writes translations, allergen links and the recipe list
// for an already persisted food, in input order.
func insertFoodChildren(tx *gorm.DB, food *models.Food, input FoodInput, languages map[uint]models.Language, allergens map[uint]models.Allergen) error {
	for _, tr := range input.Translations {
		row := models.FoodTranslation{
			FoodID:      food.ID,
			LanguageID:  tr.LanguageID,
			Name:        tr.Name,
			Description: tr.Description,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}

	if err := linkAllergens(tx, food, input.AllergenIDs, allergens); err != nil {
		return err
	}

	for _, r := range input.Recipes {
		recipe := models.Recipe{
			FoodID:         food.ID,
			IngredientName: r.IngredientName,
			Quantity:       r.Quantity,
			StepOrder:      r.StepOrder,
			Instruction:    r.Instruction,
		}
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}

		for _, tr := range r.Translations {
			row := models.RecipeTranslation{
				RecipeID:       recipe.ID,
				LanguageID:     tr.LanguageID,
				IngredientName: tr.IngredientName,
				Instruction:    tr.Instruction,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		if err := linkAllergens(tx, &recipe, r.AllergenIDs, allergens); err != nil {
			return err
		}
	}

	return nil
}

// linkAllergens replaces a model's allergen association with the deduplicated
// id set. Attaching the same id twice yields one join row.
func linkAllergens(tx *gorm.DB, model interface{}, ids []uint, allergens map[uint]models.Allergen) error {
	seen := make(map[uint]bool)
	rows := make([]models.Allergen, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		rows = append(rows, allergens[id])
	}

	return tx.Model(model).Association("Allergens").Replace(&rows)
}

// dedupeStrings keeps first occurrences; tags behave as a set.
func dedupeStrings(values []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// deleteFoodChildren removes every recipe (with its translations and allergen
// links), food translation and food allergen link. Caller re-inserts the new
// set in the same transaction.
func deleteFoodChildren(tx *gorm.DB, foodID uint) error {
	if err := tx.Exec(
		"DELETE FROM recipe_allergens WHERE recipe_id IN (SELECT id FROM recipes WHERE food_id = ?)",
		foodID).Error; err != nil {
		return err
	}

	if err := tx.
		Where("recipe_id IN (SELECT id FROM recipes WHERE food_id = ?)", foodID).
		Delete(&models.RecipeTranslation{}).Error; err != nil {
		return err
	}

	if err := tx.Where("food_id = ?", foodID).Delete(&models.Recipe{}).Error; err != nil {
		return err
	}

	if err := tx.Where("food_id = ?", foodID).Delete(&models.FoodTranslation{}).Error; err != nil {
		return err
	}

	return tx.Exec("DELETE FROM food_allergens WHERE food_id = ?", foodID).Error
}
