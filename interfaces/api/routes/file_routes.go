package routes

import (
	"github.com/gofiber/fiber/v2"

	"companydocs/interfaces/api/handlers"
)

func SetupFileRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	files := api.Group("/files")
	files.Use(protected)
	files.Post("/", h.FileHandler.UploadFile)
	files.Get("/", h.FileHandler.ListFiles)
	files.Get("/:id", h.FileHandler.GetFile)
	files.Put("/:id", h.FileHandler.UpdateFile)
	files.Delete("/:id", h.FileHandler.DeleteFile)
}
