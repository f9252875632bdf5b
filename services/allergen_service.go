package services

import (
	"errors"

	"github.com/gueleresra1/Yemeksystem/apperrors"
	"github.com/gueleresra1/Yemeksystem/logger"
	"github.com/gueleresra1/Yemeksystem/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AllergenService manages the canonical allergen catalog and its per-language
// name translations. Catalog mutation is admin-only; translations are open to
// any authenticated user.
type AllergenService struct {
	db *gorm.DB
}

func NewAllergenService(db *gorm.DB) *AllergenService {
	return &AllergenService{db: db}
}

type AllergenInput struct {
	Code string `json:"code" binding:"required"`
	Icon string `json:"icon"`
}

type AllergenPage struct {
	Allergens []models.Allergen `json:"allergens"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	Size      int               `json:"size"`
}

func (s *AllergenService) CreateAllergen(actor CurrentUser, input AllergenInput) (*models.Allergen, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only admins can create allergens")
	}

	var existing models.Allergen
	err := s.db.Where("code = ?", input.Code).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("allergen code %q already exists", input.Code)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	allergen := models.Allergen{Code: input.Code, Icon: input.Icon}
	if err := s.db.Create(&allergen).Error; err != nil {
		return nil, err
	}

	logger.Info("allergen created", zap.Uint("allergen_id", allergen.ID), zap.String("code", allergen.Code))
	return &allergen, nil
}

func (s *AllergenService) UpdateAllergen(actor CurrentUser, allergenID uint, input AllergenInput) (*models.Allergen, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only admins can update allergens")
	}

	var allergen models.Allergen
	if err := s.db.First(&allergen, allergenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("allergen %d not found", allergenID)
		}
		return nil, err
	}

	if input.Code != "" && input.Code != allergen.Code {
		var existing models.Allergen
		err := s.db.Where("code = ? AND id <> ?", input.Code, allergenID).First(&existing).Error
		if err == nil {
			return nil, apperrors.Conflict("allergen code %q already exists", input.Code)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		allergen.Code = input.Code
	}
	if input.Icon != "" {
		allergen.Icon = input.Icon
	}

	if err := s.db.Save(&allergen).Error; err != nil {
		return nil, err
	}

	return s.GetAllergen(allergen.ID)
}

// DeleteAllergen hard-deletes the catalog record. Join rows and translations
// go in the same transaction so no dangling references survive.
func (s *AllergenService) DeleteAllergen(actor CurrentUser, allergenID uint) error {
	if !actor.IsAdmin() {
		return apperrors.Forbidden("only admins can delete allergens")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var allergen models.Allergen
		if err := tx.First(&allergen, allergenID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("allergen %d not found", allergenID)
			}
			return err
		}

		if err := tx.Exec("DELETE FROM food_allergens WHERE allergen_id = ?", allergenID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipe_allergens WHERE allergen_id = ?", allergenID).Error; err != nil {
			return err
		}
		if err := tx.Where("allergen_id = ?", allergenID).Delete(&models.AllergenTranslation{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&allergen).Error; err != nil {
			return err
		}

		logger.Info("allergen deleted", zap.Uint("allergen_id", allergenID), zap.String("code", allergen.Code))
		return nil
	})
}

func (s *AllergenService) GetAllergen(allergenID uint) (*models.Allergen, error) {
	var allergen models.Allergen
	err := s.db.
		Preload("Translations").
		Preload("Translations.Language").
		First(&allergen, allergenID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("allergen %d not found", allergenID)
		}
		return nil, err
	}
	return &allergen, nil
}

// ListAllergens pages through the catalog. languageCode, when set, narrows
// each allergen's translations to that language.
func (s *AllergenService) ListAllergens(page, size int, languageCode string) (*AllergenPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	var total int64
	if err := s.db.Model(&models.Allergen{}).Count(&total).Error; err != nil {
		return nil, err
	}

	q := s.db.Preload("Translations.Language")
	if languageCode != "" {
		q = q.Preload("Translations",
			"language_id IN (SELECT id FROM languages WHERE code = ?)", languageCode)
	} else {
		q = q.Preload("Translations")
	}

	var allergens []models.Allergen
	err := q.Order("id").Offset((page - 1) * size).Limit(size).Find(&allergens).Error
	if err != nil {
		return nil, err
	}

	return &AllergenPage{Allergens: allergens, Total: total, Page: page, Size: size}, nil
}

// AddTranslation creates the (allergen, language) translation. Any
// authenticated user may contribute; the composite unique index backs the
// application-level existence check.
func (s *AllergenService) AddTranslation(actor CurrentUser, allergenID, languageID uint, name string) (*models.AllergenTranslation, error) {
	var translation models.AllergenTranslation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var allergen models.Allergen
		if err := tx.First(&allergen, allergenID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.InvalidReference("allergen %d not found", allergenID)
			}
			return err
		}

		var language models.Language
		if err := tx.First(&language, languageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.InvalidReference("language %d not found", languageID)
			}
			return err
		}

		var existing models.AllergenTranslation
		err := tx.Where("allergen_id = ? AND language_id = ?", allergenID, languageID).First(&existing).Error
		if err == nil {
			return apperrors.Conflict("translation already exists for this language")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		translation = models.AllergenTranslation{
			AllergenID: allergenID,
			LanguageID: languageID,
			Name:       name,
		}
		return tx.Create(&translation).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Language").First(&translation, translation.ID).Error; err != nil {
		return nil, err
	}
	return &translation, nil
}

func (s *AllergenService) UpdateTranslation(actor CurrentUser, allergenID, languageID uint, name string) (*models.AllergenTranslation, error) {
	var translation models.AllergenTranslation
	err := s.db.Preload("Language").
		Where("allergen_id = ? AND language_id = ?", allergenID, languageID).
		First(&translation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("translation not found")
		}
		return nil, err
	}

	if name != "" {
		translation.Name = name
	}
	if err := s.db.Save(&translation).Error; err != nil {
		return nil, err
	}
	return &translation, nil
}
