package services

import (
	"errors"

	"github.com/gueleresra1/Yemeksystem/apperrors"
	"github.com/gueleresra1/Yemeksystem/logger"
	"github.com/gueleresra1/Yemeksystem/models"
	"github.com/gueleresra1/Yemeksystem/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthService handles registration and login. Tokens carry the user id and
// the resolved role name so business code never compares role ids.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// RegisterUser creates a regular customer account.
func (s *AuthService) RegisterUser(email, password string) (*models.User, error) {
	return s.register(email, password, models.RoleUser)
}

// RegisterDealer creates a restaurant/vendor account able to publish foods.
func (s *AuthService) RegisterDealer(email, password string) (*models.User, error) {
	return s.register(email, password, models.RoleDealer)
}

func (s *AuthService) register(email, password, roleName string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var role models.Role
	if err := s.db.Where("name = ?", roleName).First(&role).Error; err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInvalidReference, "role "+roleName+" not seeded")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		RoleID:   role.ID,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	user.Role = role

	logger.Info("user registered", zap.Uint("user_id", user.ID), zap.String("role", roleName))
	return &user, nil
}

// AuthenticateUser verifies credentials and returns a signed token.
func (s *AuthService) AuthenticateUser(email, password string) (string, error) {
	var user models.User
	err := s.db.Preload("Role").Where("email = ?", email).First(&user).Error
	if err != nil {
		return "", apperrors.NotFound("invalid email or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", apperrors.Forbidden("invalid email or password")
	}

	return utils.GenerateJWT(user.ID, user.Email, user.Role.Name)
}

// GetProfile returns the user with the role and its localized names resolved.
func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Role").Preload("Role.Translations.Language").First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user %d not found", userID)
		}
		return nil, err
	}
	return &user, nil
}
