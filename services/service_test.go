package services

import (
	"fmt"
	"testing"

	"github.com/gueleresra1/Yemeksystem/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database, migrates the full schema
// and seeds roles plus the tr/en language pair.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.RoleTranslation{},
		&models.User{},
		&models.Language{},
		&models.Allergen{},
		&models.AllergenTranslation{},
		&models.Food{},
		&models.FoodTranslation{},
		&models.Recipe{},
		&models.RecipeTranslation{},
		&models.Restaurant{},
		&models.RestaurantCategory{},
		&models.RestaurantSettings{},
		&models.Order{},
	))

	roles := []models.Role{
		{Name: models.RoleAdmin},
		{Name: models.RoleUser},
		{Name: models.RoleDealer},
	}
	require.NoError(t, db.Create(&roles).Error)

	languages := []models.Language{
		{Code: "tr", Name: "Turkish", NativeName: "Türkçe", IsActive: true},
		{Code: "en", Name: "English", NativeName: "English", IsActive: true},
	}
	require.NoError(t, db.Create(&languages).Error)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, roleName string) models.User {
	t.Helper()

	var role models.Role
	require.NoError(t, db.Where("name = ?", roleName).First(&role).Error)

	user := models.User{Email: email, Password: "x", RoleID: role.ID}
	require.NoError(t, db.Create(&user).Error)
	user.Role = role
	return user
}

func asActor(user models.User) CurrentUser {
	return CurrentUser{ID: user.ID, Email: user.Email, Role: user.Role.Name}
}

func seedAllergen(t *testing.T, db *gorm.DB, code string) models.Allergen {
	t.Helper()

	allergen := models.Allergen{Code: code}
	require.NoError(t, db.Create(&allergen).Error)
	return allergen
}

func languageByCode(t *testing.T, db *gorm.DB, code string) models.Language {
	t.Helper()

	var language models.Language
	require.NoError(t, db.Where("code = ?", code).First(&language).Error)
	return language
}
