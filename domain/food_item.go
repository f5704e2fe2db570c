package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessDeleteFoodItem = "food item deleted successfully"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidUnit        = errors.New("invalid unit")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrExpiryDateInPast   = errors.New("expiry date must be today or later")
	ErrInvalidPage        = errors.New("page must be a positive integer")
	ErrInvalidLimit       = errors.New("limit must be a positive integer")
	ErrUnauthorizedAccess = errors.New("unauthorized access to food item")
)

// Categories is the closed set of listing categories. Incoming values are
// matched case-insensitively against it.
var Categories = map[string]bool{
	"FRUITS":       true,
	"VEGETABLES":   true,
	"DAIRY":        true,
	"MEAT":         true,
	"BAKERY":       true,
	"CANNED_GOODS": true,
	"FROZEN":       true,
	"BEVERAGES":    true,
	"SNACKS":       true,
	"OTHER":        true,
}

// Units accepted for listing quantities.
var Units = map[string]bool{
	"kg":      true,
	"g":       true,
	"pieces":  true,
	"liters":  true,
	"ml":      true,
	"bunches": true,
	"boxes":   true,
}

type (
	CreateFoodItemRequest struct {
		Title         string   `json:"title" validate:"required"`
		Description   string   `json:"description"`
		Category      string   `json:"category" validate:"required"`
		Quantity      float64  `json:"quantity" validate:"required,gt=0"`
		Unit          string   `json:"unit" validate:"required"`
		OriginalPrice *float64 `json:"original_price" validate:"omitempty,gte=0"`
		CurrentPrice  float64  `json:"current_price" validate:"gte=0"`
		ExpiryDate    string   `json:"expiry_date" validate:"required"`
		Location      string   `json:"location" validate:"required"`
		ImageURL      string   `json:"image_url" validate:"omitempty,url"`
	}

	UpdateFoodItemRequest struct {
		Title         string   `json:"title" validate:"omitempty"`
		Description   string   `json:"description" validate:"omitempty"`
		Category      string   `json:"category" validate:"omitempty"`
		Quantity      float64  `json:"quantity" validate:"omitempty,gt=0"`
		Unit          string   `json:"unit" validate:"omitempty"`
		OriginalPrice *float64 `json:"original_price" validate:"omitempty,gte=0"`
		CurrentPrice  *float64 `json:"current_price" validate:"omitempty,gte=0"`
		ExpiryDate    string   `json:"expiry_date" validate:"omitempty"`
		Location      string   `json:"location" validate:"omitempty"`
		ImageURL      string   `json:"image_url" validate:"omitempty,url"`
		IsAvailable   *bool    `json:"is_available"`
	}

	SellerResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Image string `json:"image,omitempty"`
	}

	FoodItemResponse struct {
		ID            string         `json:"id"`
		Title         string         `json:"title"`
		Description   string         `json:"description,omitempty"`
		Category      string         `json:"category"`
		Quantity      float64        `json:"quantity"`
		Unit          string         `json:"unit"`
		OriginalPrice *float64       `json:"original_price,omitempty"`
		CurrentPrice  float64        `json:"current_price"`
		ExpiryDate    time.Time      `json:"expiry_date"`
		Location      string         `json:"location"`
		ImageURL      string         `json:"image_url,omitempty"`
		IsAvailable   bool           `json:"is_available"`
		CreatedAt     time.Time      `json:"created_at"`
		Seller        SellerResponse `json:"seller"`
	}

	PaginationResponse struct {
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Total int64 `json:"total"`
		Pages int64 `json:"pages"`
	}

	ListFoodItemsResponse struct {
		Items      []FoodItemResponse `json:"items"`
		Pagination PaginationResponse `json:"pagination"`
	}
)
