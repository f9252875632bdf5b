package services

import (
	"errors"

	"github.com/gueleresra1/Yemeksystem/apperrors"
	"github.com/gueleresra1/Yemeksystem/models"

	"gorm.io/gorm"
)

// LanguageService is the read-mostly locale registry. The set is seeded at
// deployment and not mutable through the HTTP surface.
type LanguageService struct {
	db *gorm.DB
}

func NewLanguageService(db *gorm.DB) *LanguageService {
	return &LanguageService{db: db}
}

func (s *LanguageService) Resolve(languageID uint) (*models.Language, error) {
	var language models.Language
	if err := s.db.First(&language, languageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("language %d not found", languageID)
		}
		return nil, err
	}
	return &language, nil
}

func (s *LanguageService) ResolveByCode(code string) (*models.Language, error) {
	var language models.Language
	if err := s.db.Where("code = ?", code).First(&language).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("language %q not found", code)
		}
		return nil, err
	}
	return &language, nil
}

func (s *LanguageService) ListActive() ([]models.Language, error) {
	var languages []models.Language
	if err := s.db.Where("is_active = ?", true).Order("code").Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}
