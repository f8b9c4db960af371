package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bdenterprises/backend-api/internal/application/usecase"
	"github.com/bdenterprises/backend-api/pkg/logger"
)

// LocationHandler oficinas de la empresa.
type LocationHandler struct {
	uc  *usecase.LocationUseCase
	log *logger.Logger
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase, log *logger.Logger) *LocationHandler {
	return &LocationHandler{uc: uc, log: log}
}

// List GET /api/locations
func (h *LocationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, MsgEndpointNotFound, "Error retrieving locations")
	}
	return ok(c, fiber.StatusOK, "Locations retrieved successfully", out)
}

// Main GET /api/locations/main (alias /api/locations_main)
func (h *LocationHandler) Main(c *fiber.Ctx) error {
	out, err := h.uc.Main(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, "Main office location not found", "Error retrieving main office location")
	}
	return ok(c, fiber.StatusOK, "Main office location retrieved successfully", out)
}
