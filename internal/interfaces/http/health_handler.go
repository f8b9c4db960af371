package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bdenterprises/backend-api/internal/application/dto"
)

// Health GET /api/health
func Health(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, "Server is running", dto.HealthResponse{Status: "healthy"})
}
