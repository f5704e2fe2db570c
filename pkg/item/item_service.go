package item

import (
	"Surplus-Market/domain"
	"Surplus-Market/entities"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodItemService interface {
		ListItems(ctx context.Context, query ListQuery) (domain.ListFoodItemsResponse, error)
		GetItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error)
		CreateItem(ctx context.Context, req domain.CreateFoodItemRequest, sellerID string) (domain.FoodItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, sellerID string) (domain.FoodItemResponse, error)
		DeleteItem(ctx context.Context, id string, sellerID string) error
		GetSellerItems(ctx context.Context, sellerID string, page, limit int) (domain.ListFoodItemsResponse, error)
	}

	foodItemService struct {
		foodItemRepository FoodItemRepository
	}
)

func NewFoodItemService(foodItemRepository FoodItemRepository) FoodItemService {
	return &foodItemService{foodItemRepository: foodItemRepository}
}

func (s *foodItemService) ListItems(ctx context.Context, query ListQuery) (domain.ListFoodItemsResponse, error) {
	foodItems, count, err := s.foodItemRepository.GetFoodItems(ctx, query)
	if err != nil {
		return domain.ListFoodItemsResponse{}, err
	}

	items := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, foodItem := range foodItems {
		items = append(items, toFoodItemResponse(foodItem))
	}

	return domain.ListFoodItemsResponse{
		Items:      items,
		Pagination: paginate(query.Page, query.Limit, count),
	}, nil
}

func (s *foodItemService) GetItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodItemRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}
	return toFoodItemResponse(foodItem), nil
}

func (s *foodItemService) CreateItem(ctx context.Context, req domain.CreateFoodItemRequest, sellerID string) (domain.FoodItemResponse, error) {
	sellerUUID, err := uuid.Parse(sellerID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	category := strings.ToUpper(req.Category)
	if !domain.Categories[category] {
		return domain.FoodItemResponse{}, domain.ErrInvalidCategory
	}

	if !domain.Units[req.Unit] {
		return domain.FoodItemResponse{}, domain.ErrInvalidUnit
	}

	if req.Quantity <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	if req.CurrentPrice < 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidPrice
	}

	if req.OriginalPrice != nil && *req.OriginalPrice < 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidPrice
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	if expiryDate.Before(today()) {
		return domain.FoodItemResponse{}, domain.ErrExpiryDateInPast
	}

	foodItem := &entities.FoodItem{
		ID:            uuid.New(),
		SellerID:      sellerUUID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      category,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		OriginalPrice: req.OriginalPrice,
		CurrentPrice:  req.CurrentPrice,
		ExpiryDate:    expiryDate,
		Location:      req.Location,
		ImageURL:      req.ImageURL,
		IsAvailable:   true,
	}

	if err := s.foodItemRepository.CreateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	created, err := s.foodItemRepository.GetFoodItemByID(ctx, foodItem.ID.String())
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(created), nil
}

func (s *foodItemService) UpdateItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, sellerID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodItemRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	if foodItem.SellerID.String() != sellerID {
		return domain.FoodItemResponse{}, domain.ErrUnauthorizedAccess
	}

	if req.Title != "" {
		foodItem.Title = req.Title
	}

	if req.Description != "" {
		foodItem.Description = req.Description
	}

	if req.Category != "" {
		category := strings.ToUpper(req.Category)
		if !domain.Categories[category] {
			return domain.FoodItemResponse{}, domain.ErrInvalidCategory
		}
		foodItem.Category = category
	}

	if req.Quantity > 0 {
		foodItem.Quantity = req.Quantity
	}

	if req.Unit != "" {
		if !domain.Units[req.Unit] {
			return domain.FoodItemResponse{}, domain.ErrInvalidUnit
		}
		foodItem.Unit = req.Unit
	}

	if req.OriginalPrice != nil {
		if *req.OriginalPrice < 0 {
			return domain.FoodItemResponse{}, domain.ErrInvalidPrice
		}
		foodItem.OriginalPrice = req.OriginalPrice
	}

	if req.CurrentPrice != nil {
		if *req.CurrentPrice < 0 {
			return domain.FoodItemResponse{}, domain.ErrInvalidPrice
		}
		foodItem.CurrentPrice = *req.CurrentPrice
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
		}
		foodItem.ExpiryDate = expiryDate
	}

	if req.Location != "" {
		foodItem.Location = req.Location
	}

	if req.ImageURL != "" {
		foodItem.ImageURL = req.ImageURL
	}

	if req.IsAvailable != nil {
		foodItem.IsAvailable = *req.IsAvailable
	}

	if err := s.foodItemRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodItemService) DeleteItem(ctx context.Context, id string, sellerID string) error {
	foodItem, err := s.foodItemRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.SellerID.String() != sellerID {
		return domain.ErrUnauthorizedAccess
	}

	return s.foodItemRepository.DeleteFoodItem(ctx, id)
}

func (s *foodItemService) GetSellerItems(ctx context.Context, sellerID string, page, limit int) (domain.ListFoodItemsResponse, error) {
	foodItems, count, err := s.foodItemRepository.GetFoodItemsBySeller(ctx, sellerID, page, limit)
	if err != nil {
		return domain.ListFoodItemsResponse{}, err
	}

	items := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, foodItem := range foodItems {
		items = append(items, toFoodItemResponse(foodItem))
	}

	return domain.ListFoodItemsResponse{
		Items:      items,
		Pagination: paginate(page, limit, count),
	}, nil
}

func paginate(page, limit int, total int64) domain.PaginationResponse {
	return domain.PaginationResponse{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: (total + int64(limit) - 1) / int64(limit),
	}
}

func toFoodItemResponse(foodItem *entities.FoodItem) domain.FoodItemResponse {
	response := domain.FoodItemResponse{
		ID:            foodItem.ID.String(),
		Title:         foodItem.Title,
		Description:   foodItem.Description,
		Category:      foodItem.Category,
		Quantity:      foodItem.Quantity,
		Unit:          foodItem.Unit,
		OriginalPrice: foodItem.OriginalPrice,
		CurrentPrice:  foodItem.CurrentPrice,
		ExpiryDate:    foodItem.ExpiryDate,
		Location:      foodItem.Location,
		ImageURL:      foodItem.ImageURL,
		IsAvailable:   foodItem.IsAvailable,
		CreatedAt:     foodItem.CreatedAt,
	}

	if foodItem.Seller != nil {
		response.Seller = domain.SellerResponse{
			ID:    foodItem.Seller.ID.String(),
			Name:  foodItem.Seller.Name,
			Image: foodItem.Seller.Image,
		}
	}

	return response
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
