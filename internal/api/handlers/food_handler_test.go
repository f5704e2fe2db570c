package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Surplus-Market/domain"
	"Surplus-Market/internal/middleware"
	"Surplus-Market/internal/utils"
	"Surplus-Market/pkg/item"
	"Surplus-Market/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFoodItemService is a mock implementation of item.FoodItemService.
type MockFoodItemService struct {
	mock.Mock
}

func (m *MockFoodItemService) ListItems(ctx context.Context, query item.ListQuery) (domain.ListFoodItemsResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.ListFoodItemsResponse), args.Error(1)
}

func (m *MockFoodItemService) GetItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.FoodItemResponse), args.Error(1)
}

func (m *MockFoodItemService) CreateItem(ctx context.Context, req domain.CreateFoodItemRequest, sellerID string) (domain.FoodItemResponse, error) {
	args := m.Called(ctx, req, sellerID)
	return args.Get(0).(domain.FoodItemResponse), args.Error(1)
}

func (m *MockFoodItemService) UpdateItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, sellerID string) (domain.FoodItemResponse, error) {
	args := m.Called(ctx, id, req, sellerID)
	return args.Get(0).(domain.FoodItemResponse), args.Error(1)
}

func (m *MockFoodItemService) DeleteItem(ctx context.Context, id string, sellerID string) error {
	args := m.Called(ctx, id, sellerID)
	return args.Error(0)
}

func (m *MockFoodItemService) GetSellerItems(ctx context.Context, sellerID string, page, limit int) (domain.ListFoodItemsResponse, error) {
	args := m.Called(ctx, sellerID, page, limit)
	return args.Get(0).(domain.ListFoodItemsResponse), args.Error(1)
}

func setupFoodApp(service item.FoodItemService, jwtService jwt.JWTService) *fiber.App {
	utils.InitValidator()
	app := fiber.New()
	m := middleware.NewMiddleware()
	h := NewFoodHandler(service, utils.Validate)

	app.Get("/api/v1/items", h.GetFoodItems)
	app.Get("/api/v1/items/mine", m.AuthMiddleware(jwtService), h.GetMyFoodItems)
	app.Get("/api/v1/items/:id", h.GetFoodItemDetails)
	app.Post("/api/v1/items", m.AuthMiddleware(jwtService), h.AddFoodItem)
	return app
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func TestFoodHandler_GetFoodItems(t *testing.T) {
	jwtService := jwt.NewJWTService()

	t.Run("Defaults applied when no query parameters", func(t *testing.T) {
		service := new(MockFoodItemService)
		app := setupFoodApp(service, jwtService)

		expectedQuery := item.ListQuery{Sort: item.SortRecent, Page: 1, Limit: 12}
		service.On("ListItems", mock.Anything, expectedQuery).Return(domain.ListFoodItemsResponse{
			Items:      []domain.FoodItemResponse{},
			Pagination: domain.PaginationResponse{Page: 1, Limit: 12},
		}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/items", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		service.AssertExpectations(t)
	})

	t.Run("Category, sort and window are forwarded", func(t *testing.T) {
		service := new(MockFoodItemService)
		app := setupFoodApp(service, jwtService)

		expectedQuery := item.ListQuery{Category: "FRUITS", Sort: item.SortPriceAsc, Page: 1, Limit: 2}
		service.On("ListItems", mock.Anything, expectedQuery).Return(domain.ListFoodItemsResponse{
			Items: []domain.FoodItemResponse{
				{Title: "Fresh Organic Apples", CurrentPrice: 2.99, ExpiryDate: time.Now()},
				{Title: "Seasonal Fruits", CurrentPrice: 4.99, ExpiryDate: time.Now()},
			},
			Pagination: domain.PaginationResponse{Page: 1, Limit: 2, Total: 3, Pages: 2},
		}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/items?category=fruits&sortBy=price_asc&page=1&limit=2", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body domain.ListFoodItemsResponse
		decodeBody(t, resp, &body)
		require.Len(t, body.Items, 2)
		assert.Equal(t, 2.99, body.Items[0].CurrentPrice)
		assert.Equal(t, 4.99, body.Items[1].CurrentPrice)
		assert.Equal(t, domain.PaginationResponse{Page: 1, Limit: 2, Total: 3, Pages: 2}, body.Pagination)
	})

	t.Run("Unknown category is a client error", func(t *testing.T) {
		service := new(MockFoodItemService)
		app := setupFoodApp(service, jwtService)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/items?category=electronics", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, domain.ErrInvalidCategory.Error(), body["error"])
		service.AssertNotCalled(t, "ListItems", mock.Anything, mock.Anything)
	})

	t.Run("Malformed page is a client error", func(t *testing.T) {
		service := new(MockFoodItemService)
		app := setupFoodApp(service, jwtService)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/items?page=abc", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Storage failure is a generic 500", func(t *testing.T) {
		service := new(MockFoodItemService)
		app := setupFoodApp(service, jwtService)

		service.On("ListItems", mock.Anything, mock.Anything).
			Return(domain.ListFoodItemsResponse{}, errors.New("pq: connection refused"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/items", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, domain.MessageInternalServerError, body["error"])
	})
}

func TestFoodHandler_AddFoodItem(t *testing.T) {
	jwtService := jwt.NewJWTService()
	sellerID := uuid.NewString()

	newCreateBody := func() []byte {
		payload, _ := json.Marshal(domain.CreateFoodItemRequest{
			Title:        "Artisan Bread",
			Category:     "BAKERY",
			Quantity:     2,
			Unit:         "pieces",
			CurrentPrice: 2.99,
			ExpiryDate:   time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02"),
			Location:     "City Bakery",
		})
		return payload
	}

	t.Run("No session yields the fixed 401 body", func(t *testing.T) {
		service := new(MockFoodItemService)
		app := setupFoodApp(service, jwtService)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewReader(newCreateBody()))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "Unauthorized", body["error"])
		service.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Garbage token yields 401", func(t *testing.T) {
		service := new(MockFoodItemService)
		app := setupFoodApp(service, jwtService)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewReader(newCreateBody()))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer not-a-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Authenticated create assigns the session identity", func(t *testing.T) {
		service := new(MockFoodItemService)
		app := setupFoodApp(service, jwtService)

		service.On("CreateItem", mock.Anything, mock.AnythingOfType("domain.CreateFoodItemRequest"), sellerID).
			Return(domain.FoodItemResponse{
				ID:     uuid.NewString(),
				Title:  "Artisan Bread",
				Seller: domain.SellerResponse{ID: sellerID},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewReader(newCreateBody()))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+jwtService.GenerateTokenUser(sellerID, domain.RoleUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body domain.FoodItemResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, sellerID, body.Seller.ID)
		service.AssertExpectations(t)
	})

	t.Run("Missing required fields are rejected before the service", func(t *testing.T) {
		service := new(MockFoodItemService)
		app := setupFoodApp(service, jwtService)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/items", bytes.NewReader([]byte(`{"description":"no title"}`)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+jwtService.GenerateTokenUser(sellerID, domain.RoleUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		service.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFoodHandler_GetMyFoodItems(t *testing.T) {
	jwtService := jwt.NewJWTService()
	sellerID := uuid.NewString()

	t.Run("Window is parsed and forwarded", func(t *testing.T) {
		service := new(MockFoodItemService)
		app := setupFoodApp(service, jwtService)

		service.On("GetSellerItems", mock.Anything, sellerID, 2, 5).Return(domain.ListFoodItemsResponse{
			Items:      []domain.FoodItemResponse{},
			Pagination: domain.PaginationResponse{Page: 2, Limit: 5},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/items/mine?page=2&limit=5", nil)
		req.Header.Set("Authorization", "Bearer "+jwtService.GenerateTokenUser(sellerID, domain.RoleUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		service.AssertExpectations(t)
	})

	t.Run("Malformed page is a client error", func(t *testing.T) {
		service := new(MockFoodItemService)
		app := setupFoodApp(service, jwtService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/items/mine?page=abc", nil)
		req.Header.Set("Authorization", "Bearer "+jwtService.GenerateTokenUser(sellerID, domain.RoleUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, domain.ErrInvalidPage.Error(), body["error"])
		service.AssertNotCalled(t, "GetSellerItems", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Zero limit is a client error", func(t *testing.T) {
		service := new(MockFoodItemService)
		app := setupFoodApp(service, jwtService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/items/mine?limit=0", nil)
		req.Header.Set("Authorization", "Bearer "+jwtService.GenerateTokenUser(sellerID, domain.RoleUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		service.AssertNotCalled(t, "GetSellerItems", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFoodHandler_GetFoodItemDetails(t *testing.T) {
	jwtService := jwt.NewJWTService()

	t.Run("Unknown item is 404", func(t *testing.T) {
		service := new(MockFoodItemService)
		app := setupFoodApp(service, jwtService)

		itemID := uuid.NewString()
		service.On("GetItemByID", mock.Anything, itemID).
			Return(domain.FoodItemResponse{}, domain.ErrFoodItemNotFound)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/items/"+itemID, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
