package routes

import (
	"github.com/gofiber/fiber/v2"

	"companydocs/interfaces/api/handlers"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	users := api.Group("/users")
	users.Use(protected)

	// finder routes before /:id so the literal segments win
	users.Get("/email/:email", h.UserHandler.GetUserByEmail)
	users.Get("/name/:name", h.UserHandler.GetUserByName)

	users.Get("/:id", h.UserHandler.GetUser)
	users.Put("/:id", h.UserHandler.UpdateUser)
	users.Delete("/:id", h.UserHandler.DeleteUser)
}
