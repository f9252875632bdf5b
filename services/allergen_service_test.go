package services

import (
	"testing"

	"github.com/gueleresra1/Yemeksystem/apperrors"
	"github.com/gueleresra1/Yemeksystem/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAllergenAdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllergenService(db)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	customer := seedUser(t, db, "customer@example.com", models.RoleUser)

	_, err := svc.CreateAllergen(asActor(customer), AllergenInput{Code: "gluten"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	allergen, err := svc.CreateAllergen(asActor(admin), AllergenInput{Code: "gluten", Icon: "🌾"})
	require.NoError(t, err)
	assert.Equal(t, "gluten", allergen.Code)

	// Duplicate code is a conflict.
	_, err = svc.CreateAllergen(asActor(admin), AllergenInput{Code: "gluten"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestUpdateAllergenCodeCollision(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllergenService(db)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)

	gluten, err := svc.CreateAllergen(asActor(admin), AllergenInput{Code: "gluten"})
	require.NoError(t, err)
	_, err = svc.CreateAllergen(asActor(admin), AllergenInput{Code: "lactose"})
	require.NoError(t, err)

	_, err = svc.UpdateAllergen(asActor(admin), gluten.ID, AllergenInput{Code: "lactose"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	updated, err := svc.UpdateAllergen(asActor(admin), gluten.ID, AllergenInput{Code: "wheat", Icon: "🌾"})
	require.NoError(t, err)
	assert.Equal(t, "wheat", updated.Code)
	assert.Equal(t, "🌾", updated.Icon)
}

func TestDeleteAllergenClearsAssociations(t *testing.T) {
	db := newTestDB(t)
	allergenSvc := NewAllergenService(db)
	menuSvc := NewMenuService(db)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	dealer := seedUser(t, db, "dealer@example.com", models.RoleDealer)
	en := languageByCode(t, db, "en")

	allergen, err := allergenSvc.CreateAllergen(asActor(admin), AllergenInput{Code: "gluten"})
	require.NoError(t, err)
	_, err = allergenSvc.AddTranslation(asActor(admin), allergen.ID, en.ID, "Gluten")
	require.NoError(t, err)

	food, err := menuSvc.CreateFood(asActor(dealer), FoodInput{
		Name:        "Bread",
		Price:       5.0,
		Category:    "Bakery",
		AllergenIDs: []uint{allergen.ID},
		Recipes: []RecipeInput{
			{IngredientName: "Flour", Quantity: "1kg", StepOrder: 1, AllergenIDs: []uint{allergen.ID}},
		},
	})
	require.NoError(t, err)

	require.NoError(t, allergenSvc.DeleteAllergen(asActor(admin), allergen.ID))

	var joinRows int64
	require.NoError(t, db.Table("food_allergens").Where("allergen_id = ?", allergen.ID).Count(&joinRows).Error)
	assert.Zero(t, joinRows)
	require.NoError(t, db.Table("recipe_allergens").Where("allergen_id = ?", allergen.ID).Count(&joinRows).Error)
	assert.Zero(t, joinRows)

	var translations int64
	require.NoError(t, db.Model(&models.AllergenTranslation{}).Where("allergen_id = ?", allergen.ID).Count(&translations).Error)
	assert.Zero(t, translations)

	// The food itself survives, now without the allergen tag.
	got, err := menuSvc.GetFood(food.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Allergens)
}

func TestAddTranslationTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllergenService(db)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	en := languageByCode(t, db, "en")

	gluten, err := svc.CreateAllergen(asActor(admin), AllergenInput{Code: "gluten"})
	require.NoError(t, err)

	translation, err := svc.AddTranslation(asActor(admin), gluten.ID, en.ID, "Gluten")
	require.NoError(t, err)
	assert.Equal(t, "Gluten", translation.Name)
	assert.Equal(t, "en", translation.Language.Code)

	_, err = svc.AddTranslation(asActor(admin), gluten.ID, en.ID, "Gluten")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestAddTranslationInvalidReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllergenService(db)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	en := languageByCode(t, db, "en")

	_, err := svc.AddTranslation(asActor(admin), 4242, en.ID, "Gluten")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidReference, apperrors.KindOf(err))

	gluten, err := svc.CreateAllergen(asActor(admin), AllergenInput{Code: "gluten"})
	require.NoError(t, err)

	_, err = svc.AddTranslation(asActor(admin), gluten.ID, 4242, "Gluten")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidReference, apperrors.KindOf(err))
}

func TestAddTranslationOpenToAnyAuthenticatedUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllergenService(db)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	customer := seedUser(t, db, "customer@example.com", models.RoleUser)
	tr := languageByCode(t, db, "tr")

	gluten, err := svc.CreateAllergen(asActor(admin), AllergenInput{Code: "gluten"})
	require.NoError(t, err)

	translation, err := svc.AddTranslation(asActor(customer), gluten.ID, tr.ID, "Glüten")
	require.NoError(t, err)
	assert.Equal(t, "Glüten", translation.Name)
}

func TestUpdateTranslation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllergenService(db)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	en := languageByCode(t, db, "en")

	gluten, err := svc.CreateAllergen(asActor(admin), AllergenInput{Code: "gluten"})
	require.NoError(t, err)

	_, err = svc.UpdateTranslation(asActor(admin), gluten.ID, en.ID, "Gluten")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = svc.AddTranslation(asActor(admin), gluten.ID, en.ID, "Gluten")
	require.NoError(t, err)

	updated, err := svc.UpdateTranslation(asActor(admin), gluten.ID, en.ID, "Wheat gluten")
	require.NoError(t, err)
	assert.Equal(t, "Wheat gluten", updated.Name)
}

func TestListAllergensPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewAllergenService(db)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	tr := languageByCode(t, db, "tr")
	en := languageByCode(t, db, "en")

	codes := []string{"gluten", "lactose", "egg"}
	for _, code := range codes {
		allergen, err := svc.CreateAllergen(asActor(admin), AllergenInput{Code: code})
		require.NoError(t, err)
		_, err = svc.AddTranslation(asActor(admin), allergen.ID, tr.ID, code+"-tr")
		require.NoError(t, err)
		_, err = svc.AddTranslation(asActor(admin), allergen.ID, en.ID, code+"-en")
		require.NoError(t, err)
	}

	page, err := svc.ListAllergens(1, 2, "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
	assert.Len(t, page.Allergens, 2)

	page, err = svc.ListAllergens(2, 2, "")
	require.NoError(t, err)
	assert.Len(t, page.Allergens, 1)

	// Language filter narrows translations, not allergens.
	page, err = svc.ListAllergens(1, 10, "tr")
	require.NoError(t, err)
	require.Len(t, page.Allergens, 3)
	for _, a := range page.Allergens {
		require.Len(t, a.Translations, 1)
		assert.Equal(t, "tr", a.Translations[0].Language.Code)
	}
}
