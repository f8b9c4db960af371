package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bdenterprises/backend-api/internal/application/usecase"
	"github.com/bdenterprises/backend-api/pkg/logger"
)

// CompanyHandler datos públicos de la empresa.
type CompanyHandler struct {
	uc  *usecase.CompanyUseCase
	log *logger.Logger
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, log: log}
}

// Info GET /api/company_info (alias /api/company-info)
func (h *CompanyHandler) Info(c *fiber.Ctx) error {
	out, err := h.uc.Info(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, MsgEndpointNotFound, "Error retrieving company info")
	}
	return ok(c, fiber.StatusOK, "Company info retrieved successfully", out)
}

// SocialMedia GET /api/social_media (alias /api/social-media)
func (h *CompanyHandler) SocialMedia(c *fiber.Ctx) error {
	out, err := h.uc.SocialMedia(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, MsgEndpointNotFound, "Error retrieving social media links")
	}
	return ok(c, fiber.StatusOK, "Social media links retrieved successfully", out)
}
