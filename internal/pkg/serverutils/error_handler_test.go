package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"catalog-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperror.NewNotFoundError("product", 1), fiber.StatusNotFound},
		{apperror.NewPersistenceError("save", errors.New("boom")), fiber.StatusInternalServerError},
		{&apperror.ConcurrentModificationError{Resource: "product", Id: 1}, fiber.StatusConflict},
		{&apperror.AuthorizationError{Operation: "product.delete"}, fiber.StatusForbidden},
		{&apperror.UnrecognizedEnumValue{Enum: "CategoryType", Value: "X"}, fiber.StatusUnprocessableEntity},
		{&apperror.MappingError{From: "a", To: "b"}, fiber.StatusUnprocessableEntity},
		{apperror.NewValidationError("name", "is required"), fiber.StatusBadRequest},
		{&apperror.AuthenticationError{Reason: "bad credentials"}, fiber.StatusUnauthorized},
		{fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{errors.New("anything"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperror.NewNotFoundError("product", 9)
	})
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return apperror.NewValidationError("name", "is required")
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return apperror.NewPersistenceError("find", errors.New("dial tcp: refused"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body BaseResponse[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "product 9 not found", body.Message)

	resp, err = app.Test(httptest.NewRequest("GET", "/invalid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body = BaseResponse[any]{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Errors)

	resp, err = app.Test(httptest.NewRequest("GET", "/broken", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body = BaseResponse[any]{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body.Message)
}
