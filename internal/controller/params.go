package controller

import (
	"strconv"

	"catalog-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// pathId reads the numeric :id route parameter.
func pathId(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, apperror.NewValidationError("id", "must be an integer")
	}
	return id, nil
}

func bodyError(err error) error {
	return apperror.NewValidationError("body", err.Error())
}
