package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"companydocs/interfaces/api/middleware"
	"companydocs/interfaces/api/routes"
	"companydocs/pkg/di"
	"companydocs/pkg/logger"
)

func main() {
	container := di.NewContainer()
	if err := container.Initialize(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	setupGracefulShutdown(container)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      container.Config.App.Name,
		BodyLimit:    int(container.Config.Storage.MaxUploadSize) + 1<<20, // form overhead
	})

	// request id must come before the logger so every line carries it
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware())

	routes.SetupRoutes(app, container.Handlers(), container.AuthService)

	port := container.Config.App.Port
	logger.Info("Server starting", "port", port, "env", container.Config.App.Env, "app", container.Config.App.Name)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")
		container.Cleanup()
		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
