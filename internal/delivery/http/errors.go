package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/orbitwatch/backend/internal/domain"
	"github.com/orbitwatch/backend/internal/logging"
)

// StatusFor maps a handler error to its HTTP status
func StatusFor(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindLocation:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders handler errors as {error, details?}. Causes of domain
// errors and unknown errors never reach the client.
func ErrorHandler(log logging.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logging.Noop()
	}
	return func(c *fiber.Ctx, err error) error {
		code := StatusFor(err)
		body := fiber.Map{"error": "Internal Server Error"}

		var fe *fiber.Error
		if de := domain.AsError(err); de != nil {
			body["error"] = de.Message
			if de.Detail != "" {
				body["details"] = de.Detail
			}
		} else if errors.As(err, &fe) {
			body["error"] = fe.Message
		} else {
			logging.FromContext(c.UserContext(), log).Error(c.UserContext(), "unhandled request error",
				logging.String("path", c.Path()),
				logging.Err(err),
			)
		}

		return c.Status(code).JSON(body)
	}
}
