package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRouter(app *fiber.App, handler *AgentHandler) {
	// Middleware
	app.Use(logger.New())

	// Endpoints
	app.Get("/", handler.HandleWelcome)
	app.Post("/", handler.HandleAgent)
}
