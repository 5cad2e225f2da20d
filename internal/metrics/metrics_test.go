package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveOperation(t *testing.T) {
	m := New(false)

	m.ObserveOperation("product.find_by_id", "ok", 3*time.Millisecond)
	m.ObserveOperation("product.find_by_id", "not_found", time.Millisecond)
	m.ObserveOperation("product.find_by_id", "ok", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operationCalls.WithLabelValues("product.find_by_id", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationCalls.WithLabelValues("product.find_by_id", "not_found")))
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	m := New(false)
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/product/v1/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for _, id := range []string{"1", "2", "3"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/product/v1/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/product/v1/:id", "200")))
}
