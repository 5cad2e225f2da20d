package serverutils

import (
	"strings"

	"catalog-be/internal/pkg/security"

	"github.com/gofiber/fiber/v2"
)

// JwtMiddleware authenticates the bearer token and stores the principal both
// in Locals and in the user context handed to services.
func JwtMiddleware(issuer *security.TokenIssuer) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}

		principal, err := issuer.Parse(authHeader[7:])
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		ctx.Locals("user_id", principal.UserId)
		ctx.Locals("username", principal.Username)
		ctx.SetUserContext(security.WithPrincipal(ctx.UserContext(), principal))
		return ctx.Next()
	}
}
