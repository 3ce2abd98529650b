package serverutils

import (
	"errors"

	"pricebook-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks struct validate tags, mapping violations to 400.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// ErrorHandlerMiddleware translates domain errors into JSON responses.
// Anything unrecognized stays a 500, persistence failures included.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrNoGroups):
			status = fiber.StatusNotFound
		case errors.Is(err, apperr.ErrDuplicateName), errors.Is(err, apperr.ErrDuplicateMember):
			status = fiber.StatusBadRequest
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
}
