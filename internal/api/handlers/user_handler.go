package handlers

import (
	"Surplus-Market/domain"
	"Surplus-Market/internal/api/presenters"
	"Surplus-Market/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		SendVerificationEmail(c *fiber.Ctx) error
		VerifyEmail(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.UserRegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return presenters.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.UserLoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *userHandler) SendVerificationEmail(c *fiber.Ctx) error {
	req := new(domain.SendVerificationEmailRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.userService.SendVerificationEmail(c.Context(), req.Email); err != nil {
		return presenters.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": domain.MessageSuccessSendVerify})
}

func (h *userHandler) VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return presenters.Error(c, fiber.StatusBadRequest, domain.ErrTokenInvalid.Error())
	}

	if err := h.userService.VerifyEmail(c.Context(), token); err != nil {
		return presenters.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": domain.MessageSuccessVerifyEmail})
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return presenters.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
