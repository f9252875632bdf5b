package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gueleresra1/Yemeksystem/apperrors"
	"github.com/gueleresra1/Yemeksystem/logger"
	"github.com/gueleresra1/Yemeksystem/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RestaurantService owns restaurant storefronts: creation with their default
// settings and categories, owner-guarded mutation and the order inbox.
type RestaurantService struct {
	db *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db}
}

type RestaurantInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	CuisineType string `json:"cuisine_type"`
	PriceRange  int    `json:"price_range"`
}

type RestaurantFilter struct {
	City        string
	CuisineType string
	ActiveOnly  bool
	Limit       int
	Offset      int
}

type CategoryInput struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

type SettingsInput struct {
	ThemeColor         string   `json:"theme_color"`
	SecondaryColor     string   `json:"secondary_color"`
	DefaultLanguage    string   `json:"default_language"`
	SupportedLanguages []string `json:"supported_languages"`
	Currency           string   `json:"currency"`
	TaxRate            *float64 `json:"tax_rate"`
	ServiceFee         *float64 `json:"service_fee"`
	MinimumOrder       *float64 `json:"minimum_order"`
	DeliveryFee        *float64 `json:"delivery_fee"`
	DeliveryTime       string   `json:"delivery_time"`
}

type OrderInput struct {
	RestaurantID    uint               `json:"restaurant_id" binding:"required"`
	OrderType       string             `json:"order_type"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   string             `json:"customer_email"`
	DeliveryAddress string             `json:"delivery_address"`
	Items           []models.OrderItem `json:"items" binding:"required"`
	PaymentMethod   string             `json:"payment_method"`
	Notes           string             `json:"notes"`
}

// Menu sections every new restaurant starts with.
var defaultCategories = []models.RestaurantCategory{
	{Name: "Kahvaltı", DisplayOrder: 1, IsActive: true},
	{Name: "Ana Yemekler", DisplayOrder: 2, IsActive: true},
	{Name: "Tatlılar", DisplayOrder: 3, IsActive: true},
	{Name: "İçecekler", DisplayOrder: 4, IsActive: true},
}

// CreateRestaurant inserts the restaurant, its settings row and the default
// menu categories in one transaction. The slug gets a random suffix so two
// restaurants may share a name.
func (s *RestaurantService) CreateRestaurant(actor CurrentUser, input RestaurantInput) (*models.Restaurant, error) {
	if input.Name == "" {
		return nil, apperrors.Validation("name is required")
	}

	priceRange := input.PriceRange
	if priceRange == 0 {
		priceRange = 2
	}

	var restaurantID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		restaurant := models.Restaurant{
			Name:        input.Name,
			Slug:        generateSlug(input.Name),
			Description: input.Description,
			OwnerID:     actor.ID,
			Phone:       input.Phone,
			Email:       input.Email,
			Address:     input.Address,
			City:        input.City,
			PostalCode:  input.PostalCode,
			CuisineType: input.CuisineType,
			PriceRange:  priceRange,
			IsActive:    true,
		}
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}

		settings := models.RestaurantSettings{
			RestaurantID:       restaurant.ID,
			ThemeColor:         "#667eea",
			SecondaryColor:     "#764ba2",
			DefaultLanguage:    "tr",
			SupportedLanguages: []string{"tr", "en"},
			Currency:           "TRY",
			TaxRate:            0.20,
			DeliveryTime:       "30-45 dk",
		}
		if err := tx.Create(&settings).Error; err != nil {
			return err
		}

		for _, category := range defaultCategories {
			category.RestaurantID = restaurant.ID
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
		}

		restaurantID = restaurant.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("restaurant created",
		zap.Uint("restaurant_id", restaurantID),
		zap.Uint("owner_id", actor.ID))

	return s.GetRestaurant(restaurantID)
}

func (s *RestaurantService) ListRestaurants(filter RestaurantFilter) ([]models.Restaurant, error) {
	q := s.db.Order("restaurants.id")

	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if filter.City != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(filter.City)+"%")
	}
	if filter.CuisineType != "" {
		q = q.Where("LOWER(cuisine_type) LIKE ?", "%"+strings.ToLower(filter.CuisineType)+"%")
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var restaurants []models.Restaurant
	if err := q.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *RestaurantService) GetRestaurant(restaurantID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("Settings").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("restaurant_categories.display_order ASC")
		}).
		First(&restaurant, restaurantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("restaurant %d not found", restaurantID)
		}
		return nil, err
	}
	return &restaurant, nil
}

// GetRestaurantBySlug serves the public menu URL.
func (s *RestaurantService) GetRestaurantBySlug(slug string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("Settings").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("restaurant_categories.display_order ASC")
		}).
		Where("slug = ?", slug).
		First(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("restaurant %q not found", slug)
		}
		return nil, err
	}
	return &restaurant, nil
}

// UpdateRestaurant updates scalar fields. The slug is fixed at creation and
// never changes; published menu URLs stay valid.
func (s *RestaurantService) UpdateRestaurant(actor CurrentUser, restaurantID uint, input RestaurantInput) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("restaurant %d not found", restaurantID)
		}
		return nil, err
	}

	if restaurant.OwnerID != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.Forbidden("not allowed to update this restaurant")
	}

	if input.Name == "" {
		return nil, apperrors.Validation("name is required")
	}

	restaurant.Name = input.Name
	restaurant.Description = input.Description
	restaurant.Phone = input.Phone
	restaurant.Email = input.Email
	restaurant.Address = input.Address
	restaurant.City = input.City
	restaurant.PostalCode = input.PostalCode
	restaurant.CuisineType = input.CuisineType
	if input.PriceRange != 0 {
		restaurant.PriceRange = input.PriceRange
	}

	if err := s.db.Save(&restaurant).Error; err != nil {
		return nil, err
	}

	logger.Info("restaurant updated",
		zap.Uint("restaurant_id", restaurantID),
		zap.Uint("actor_id", actor.ID))

	return s.GetRestaurant(restaurantID)
}

func (s *RestaurantService) CreateCategory(actor CurrentUser, restaurantID uint, input CategoryInput) (*models.RestaurantCategory, error) {
	restaurant, err := s.ownedRestaurant(actor, restaurantID)
	if err != nil {
		return nil, err
	}

	category := models.RestaurantCategory{
		RestaurantID: restaurant.ID,
		Name:         input.Name,
		Description:  input.Description,
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories returns the active menu sections in display order. Reads are
// public.
func (s *RestaurantService) ListCategories(restaurantID uint) ([]models.RestaurantCategory, error) {
	if _, err := s.GetRestaurant(restaurantID); err != nil {
		return nil, err
	}

	var categories []models.RestaurantCategory
	err := s.db.
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("display_order ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdateSettings overwrites the settings row, creating it when a legacy
// restaurant predates the settings table.
func (s *RestaurantService) UpdateSettings(actor CurrentUser, restaurantID uint, input SettingsInput) (*models.RestaurantSettings, error) {
	if _, err := s.ownedRestaurant(actor, restaurantID); err != nil {
		return nil, err
	}

	var settings models.RestaurantSettings
	err := s.db.Where("restaurant_id = ?", restaurantID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.RestaurantSettings{RestaurantID: restaurantID}
	} else if err != nil {
		return nil, err
	}

	if input.ThemeColor != "" {
		settings.ThemeColor = input.ThemeColor
	}
	if input.SecondaryColor != "" {
		settings.SecondaryColor = input.SecondaryColor
	}
	if input.DefaultLanguage != "" {
		settings.DefaultLanguage = input.DefaultLanguage
	}
	if input.SupportedLanguages != nil {
		settings.SupportedLanguages = input.SupportedLanguages
	}
	if input.Currency != "" {
		settings.Currency = input.Currency
	}
	if input.TaxRate != nil {
		settings.TaxRate = *input.TaxRate
	}
	if input.ServiceFee != nil {
		settings.ServiceFee = *input.ServiceFee
	}
	if input.MinimumOrder != nil {
		settings.MinimumOrder = *input.MinimumOrder
	}
	if input.DeliveryFee != nil {
		settings.DeliveryFee = *input.DeliveryFee
	}
	if input.DeliveryTime != "" {
		settings.DeliveryTime = input.DeliveryTime
	}

	if err := s.db.Save(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// PlaceOrder records a customer order against a restaurant. No account is
// required; the storefront is public. Amounts carry the plain item sum,
// payment handling lives outside this system.
func (s *RestaurantService) PlaceOrder(input OrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperrors.Validation("order needs at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperrors.Validation("item quantity must be greater than zero")
		}
	}

	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, input.RestaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.InvalidReference("restaurant %d not found", input.RestaurantID)
		}
		return nil, err
	}

	orderType := input.OrderType
	if orderType == "" {
		orderType = models.OrderTypeDelivery
	}

	subtotal := 0.0
	for _, item := range input.Items {
		subtotal += float64(item.Quantity) * item.Price
	}

	order := models.Order{
		RestaurantID:    restaurant.ID,
		OrderNumber:     generateOrderNumber(),
		Status:          models.OrderStatusPending,
		OrderType:       orderType,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		DeliveryAddress: input.DeliveryAddress,
		Items:           input.Items,
		Subtotal:        subtotal,
		TotalAmount:     subtotal,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   "pending",
		Notes:           input.Notes,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}

	logger.Info("order placed",
		zap.Uint("restaurant_id", restaurant.ID),
		zap.String("order_number", order.OrderNumber))

	return &order, nil
}

// ListOrders returns a restaurant's orders, newest first, capped at 50.
func (s *RestaurantService) ListOrders(actor CurrentUser, restaurantID uint, status string) ([]models.Order, error) {
	if _, err := s.ownedRestaurant(actor, restaurantID); err != nil {
		return nil, err
	}

	q := s.db.Where("restaurant_id = ?", restaurantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	if err := q.Order("created_at DESC").Limit(50).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

var orderStatuses = map[string]bool{
	models.OrderStatusPending:   true,
	models.OrderStatusConfirmed: true,
	models.OrderStatusPreparing: true,
	models.OrderStatusReady:     true,
	models.OrderStatusDelivered: true,
	models.OrderStatusCancelled: true,
}

func (s *RestaurantService) UpdateOrderStatus(actor CurrentUser, orderID uint, status string) (*models.Order, error) {
	if !orderStatuses[status] {
		return nil, apperrors.Validation("unknown order status %q", status)
	}

	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order %d not found", orderID)
		}
		return nil, err
	}

	if _, err := s.ownedRestaurant(actor, order.RestaurantID); err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}

	logger.Info("order status updated",
		zap.Uint("order_id", orderID),
		zap.String("status", status))

	return &order, nil
}

// ownedRestaurant loads the restaurant and enforces the owner-or-admin rule
// shared by every restaurant mutation.
func (s *RestaurantService) ownedRestaurant(actor CurrentUser, restaurantID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("restaurant %d not found", restaurantID)
		}
		return nil, err
	}

	if restaurant.OwnerID != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.Forbidden("not allowed to manage this restaurant")
	}
	return &restaurant, nil
}

// generateSlug lowercases the name, keeps letters, digits and spaces, turns
// spaces into dashes and appends a short random suffix.
func generateSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	base := strings.Trim(b.String(), "-")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}
