package middleware

import (
	"github.com/gofiber/fiber/v2"

	"companydocs/domain/services"
	"companydocs/pkg/logger"
	"companydocs/pkg/utils"
)

// Protected validates the bearer token against both its signature and the
// revocation table, then stores the caller identity in fiber locals. Every
// request pays the lookup so logout is effective immediately.
func Protected(authService services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		user, err := authService.Authenticate(ctx, token)
		if err != nil {
			logger.WarnContext(ctx, "Token rejected", "error", err)
			return utils.UnauthorizedResponse(c, "Invalid or expired token")
		}

		c.Locals("user", &utils.UserContext{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})

		return c.Next()
	}
}
