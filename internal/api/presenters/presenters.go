package presenters

import (
	"Surplus-Market/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// FromError maps a domain error to its client response. Anything not in the
// taxonomy is a storage failure: logged, surfaced as a generic 500 without
// the original detail.
func FromError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidUnit),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrExpiryDateInPast),
		errors.Is(err, domain.ErrInvalidPage),
		errors.Is(err, domain.ErrInvalidLimit),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return Error(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrUnauthorizedAccess):
		return Error(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrFoodItemNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return Error(c, fiber.StatusNotFound, err.Error())
	default:
		log.Errorf("%s %s failed: %v", c.Method(), c.Path(), err)
		return Error(c, fiber.StatusInternalServerError, domain.MessageInternalServerError)
	}
}
