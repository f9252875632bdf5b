package models

import "time"

// Restaurant is a dealer-facing storefront. Slug is the URL-friendly handle
// generated once at creation.
type Restaurant struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;index" json:"name"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	OwnerID uint   `gorm:"not null" json:"owner_id"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`

	Address    string `gorm:"type:text" json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`

	CuisineType string `json:"cuisine_type,omitempty"`
	PriceRange  int    `gorm:"default:2" json:"price_range"` // 1=₺, 2=₺₺, 3=₺₺₺

	IsActive   bool `gorm:"not null;default:true" json:"is_active"`
	IsVerified bool `gorm:"not null;default:false" json:"is_verified"`

	Categories []RestaurantCategory `gorm:"constraint:OnDelete:CASCADE;" json:"categories,omitempty"`
	Settings   *RestaurantSettings  `gorm:"constraint:OnDelete:CASCADE;" json:"settings,omitempty"`
	Orders     []Order              `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RestaurantCategory struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"not null;index" json:"restaurant_id"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RestaurantSettings is the one-per-restaurant configuration row, created
// with defaults alongside the restaurant.
type RestaurantSettings struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RestaurantID uint `gorm:"uniqueIndex;not null" json:"restaurant_id"`

	ThemeColor     string `gorm:"default:#667eea" json:"theme_color"`
	SecondaryColor string `gorm:"default:#764ba2" json:"secondary_color"`

	DefaultLanguage    string   `gorm:"default:tr" json:"default_language"`
	SupportedLanguages []string `gorm:"serializer:json" json:"supported_languages"`
	Currency           string   `gorm:"default:TRY" json:"currency"`

	TaxRate      float64 `gorm:"default:0.20" json:"tax_rate"`
	ServiceFee   float64 `gorm:"default:0" json:"service_fee"`
	MinimumOrder float64 `gorm:"default:0" json:"minimum_order"`
	DeliveryFee  float64 `gorm:"default:0" json:"delivery_fee"`
	DeliveryTime string  `gorm:"default:30-45 dk" json:"delivery_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Order statuses and types.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"

	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
	OrderTypeDineIn   = "dine_in"
)

// OrderItem is one line of an order, snapshotted into the order row.
type OrderItem struct {
	FoodID   uint    `json:"food_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
}

type Order struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"not null;index" json:"restaurant_id"`
	OrderNumber  string `gorm:"uniqueIndex" json:"order_number"` // ORD-20241201-A1B2C3
	Status       string `gorm:"default:pending" json:"status"`
	OrderType    string `gorm:"default:delivery" json:"order_type"`

	CustomerName    string `json:"customer_name,omitempty"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	DeliveryAddress string `gorm:"type:text" json:"delivery_address,omitempty"`

	Items       []OrderItem `gorm:"serializer:json" json:"items"`
	Subtotal    float64     `gorm:"not null" json:"subtotal"`
	TotalAmount float64     `gorm:"not null" json:"total_amount"`

	PaymentMethod string `json:"payment_method,omitempty"`
	PaymentStatus string `gorm:"default:pending" json:"payment_status"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
