package config

import (
	"github.com/gueleresra1/Yemeksystem/models"

	"gorm.io/gorm"
)

var defaultRoles = []models.Role{
	{Name: models.RoleAdmin, Description: "Yönetici yetkisi"},
	{Name: models.RoleUser, Description: "Normal kullanıcı"},
	{Name: models.RoleDealer, Description: "Bayi/Restorant yetkisi"},
}

var defaultLanguages = []models.Language{
	{Code: "tr", Name: "Turkish", NativeName: "Türkçe", IsActive: true},
	{Code: "en", Name: "English", NativeName: "English", IsActive: true},
	{Code: "de", Name: "German", NativeName: "Deutsch", IsActive: true},
	{Code: "fr", Name: "French", NativeName: "Français", IsActive: true},
}

var defaultAllergens = []models.Allergen{
	{Code: "gluten", Icon: "🌾"},
	{Code: "lactose", Icon: "🥛"},
	{Code: "egg", Icon: "🥚"},
	{Code: "peanut", Icon: "🥜"},
	{Code: "tree_nut", Icon: "🌰"},
	{Code: "soy", Icon: "🫘"},
	{Code: "fish", Icon: "🐟"},
	{Code: "shellfish", Icon: "🦐"},
	{Code: "sesame", Icon: "🫓"},
	{Code: "mustard", Icon: "🟡"},
}

// Localized role display names, keyed by role name then language code.
var defaultRoleNames = map[string]map[string]string{
	models.RoleAdmin:  {"tr": "Yönetici", "en": "Administrator"},
	models.RoleUser:   {"tr": "Kullanıcı", "en": "User"},
	models.RoleDealer: {"tr": "Bayi", "en": "Dealer"},
}

// SeedDefaults inserts roles, role translations, languages and the common
// allergen catalog if absent. Safe to run on every startup.
func SeedDefaults(db *gorm.DB) error {
	for _, role := range defaultRoles {
		if err := db.Where(models.Role{Name: role.Name}).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}

	for _, lang := range defaultLanguages {
		if err := db.Where(models.Language{Code: lang.Code}).FirstOrCreate(&lang).Error; err != nil {
			return err
		}
	}

	if err := seedRoleTranslations(db); err != nil {
		return err
	}

	for _, allergen := range defaultAllergens {
		if err := db.Where(models.Allergen{Code: allergen.Code}).FirstOrCreate(&allergen).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedRoleTranslations(db *gorm.DB) error {
	for roleName, names := range defaultRoleNames {
		var role models.Role
		if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
			return err
		}
		for code, localized := range names {
			var lang models.Language
			if err := db.Where("code = ?", code).First(&lang).Error; err != nil {
				return err
			}
			tr := models.RoleTranslation{RoleID: role.ID, LanguageID: lang.ID, Name: localized}
			if err := db.Where(models.RoleTranslation{RoleID: role.ID, LanguageID: lang.ID}).
				FirstOrCreate(&tr).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
