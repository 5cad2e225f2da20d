package serverutils

import (
	"errors"

	"catalog-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, apperror.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrMapping), errors.Is(err, apperror.ErrUnrecognizedEnumValue):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrAuthentication):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperror.ErrAuthorization):
		return fiber.StatusForbidden
	case errors.Is(err, apperror.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperror.ErrConcurrentModification):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// ErrorHandlerMiddleware turns errors returned by handlers into the standard
// error envelope. Infrastructure details are not echoed to the client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := StatusFor(err)
		message := err.Error()
		if status == fiber.StatusInternalServerError {
			message = "Internal server error"
		}

		res := ErrorResponse(status, message)
		var validationErr *apperror.ValidationError
		if errors.As(err, &validationErr) {
			res.Errors = validationErr.Violations
		}
		return ctx.Status(status).JSON(res)
	}
}
