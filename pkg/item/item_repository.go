package item

import (
	"Surplus-Market/entities"
	"context"
	"gorm.io/gorm"
)

type (
	FoodItemRepository interface {
		CreateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFoodItems(ctx context.Context, query ListQuery) ([]*entities.FoodItem, int64, error)
		GetFoodItemsBySeller(ctx context.Context, sellerID string, page, limit int) ([]*entities.FoodItem, int64, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
	}

	foodItemRepository struct {
		db *gorm.DB
	}
)

func NewFoodItemRepository(db *gorm.DB) FoodItemRepository {
	return &foodItemRepository{db: db}
}

func (r *foodItemRepository) CreateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodItemRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("id = ?", id).
		First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodItemRepository) GetFoodItems(ctx context.Context, query ListQuery) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	filtered := r.db.WithContext(ctx).
		Model(&entities.FoodItem{}).
		Where("is_available = ?", true)

	if query.Category != "" {
		filtered = filtered.Where("category = ?", query.Category)
	}

	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		filtered = filtered.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if err := filtered.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := filtered.
		Preload("Seller").
		Order(query.OrderClause()).
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

func (r *foodItemRepository) GetFoodItemsBySeller(ctx context.Context, sellerID string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	filtered := r.db.WithContext(ctx).
		Model(&entities.FoodItem{}).
		Where("seller_id = ?", sellerID)

	if err := filtered.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := filtered.
		Preload("Seller").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

func (r *foodItemRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodItemRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}
