package routes

import (
	"github.com/gofiber/fiber/v2"

	"companydocs/domain/services"
	"companydocs/interfaces/api/handlers"
	"companydocs/interfaces/api/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, authService services.AuthService) {
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")
	protected := middleware.Protected(authService)

	SetupAuthRoutes(api, h, protected)
	SetupUserRoutes(api, h, protected)
	SetupCompanyRoutes(api, h, protected)
	SetupFileRoutes(api, h, protected)
}
