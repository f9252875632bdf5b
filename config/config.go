package config

import (
	"fmt"
	"os"

	"github.com/gueleresra1/Yemeksystem/logger"
	"github.com/gueleresra1/Yemeksystem/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// GetEnv returns the value of key or fallback when unset.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func InitDB() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", "postgres"),
		GetEnv("DB_NAME", "yemeksystem"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_SSLMODE", "disable"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}

	if err := SeedDefaults(DB); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
}

// Migrate creates or updates the schema for every entity, including the
// composite unique indexes backing the one-translation-per-language rule.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
	)
}
