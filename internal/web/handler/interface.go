package handler

import "github.com/gofiber/fiber/v2"

// Service is the interface for a web handler service.
type Service interface {
	// Routes registers the handler's routes below router.
	Routes(router fiber.Router)
}
