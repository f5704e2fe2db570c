package handlers

import (
	"Surplus-Market/domain"
	"Surplus-Market/internal/api/presenters"
	"Surplus-Market/pkg/item"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetFoodItems(c *fiber.Ctx) error
		GetFoodItemDetails(c *fiber.Ctx) error
		GetMyFoodItems(c *fiber.Ctx) error
		AddFoodItem(c *fiber.Ctx) error
		UpdateFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodItemService item.FoodItemService
		validator       *validator.Validate
	}
)

func NewFoodHandler(foodItemService item.FoodItemService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodItemService: foodItemService,
		validator:       validator,
	}
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	query, err := item.ParseListQuery(
		c.Query("category"),
		c.Query("search"),
		c.Query("sortBy"),
		c.Query("page"),
		c.Query("limit"),
	)
	if err != nil {
		return presenters.FromError(c, err)
	}

	res, err := h.foodItemService.ListItems(c.Context(), query)
	if err != nil {
		return presenters.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *foodHandler) GetFoodItemDetails(c *fiber.Ctx) error {
	res, err := h.foodItemService.GetItemByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *foodHandler) GetMyFoodItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, limit, err := item.ParseWindow(c.Query("page"), c.Query("limit"))
	if err != nil {
		return presenters.FromError(c, err)
	}

	res, err := h.foodItemService.GetSellerItems(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.foodItemService.CreateItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *foodHandler) UpdateFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.foodItemService.UpdateItem(c.Context(), itemID, *req, userID)
	if err != nil {
		return presenters.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.foodItemService.DeleteItem(c.Context(), itemID, userID); err != nil {
		return presenters.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": domain.MessageSuccessDeleteFoodItem})
}
