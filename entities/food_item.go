package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SellerID      uuid.UUID `json:"seller_id"`
	Title         string    `json:"title"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	Category      string    `gorm:"index" json:"category"` // FRUITS, VEGETABLES, DAIRY, MEAT, BAKERY, CANNED_GOODS, FROZEN, BEVERAGES, SNACKS, OTHER
	Quantity      float64   `json:"quantity"`
	Unit          string    `json:"unit"` // kg, g, pieces, liters, ml, bunches, boxes
	OriginalPrice *float64  `json:"original_price,omitempty"`
	CurrentPrice  float64   `json:"current_price"`
	ExpiryDate    time.Time `json:"expiry_date"`
	Location      string    `json:"location"`
	ImageURL      string    `json:"image_url,omitempty"`
	IsAvailable   bool      `gorm:"default:true" json:"is_available"`

	Seller *User `gorm:"foreignKey:SellerID"`
	Timestamp
}
