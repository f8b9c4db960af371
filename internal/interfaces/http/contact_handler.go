package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bdenterprises/backend-api/internal/application/dto"
	"github.com/bdenterprises/backend-api/internal/application/usecase"
	"github.com/bdenterprises/backend-api/pkg/logger"
)

const msgContactNotFound = "Contact not found"

// ContactHandler maneja las peticiones HTTP para solicitudes de contacto.
type ContactHandler struct {
	uc  *usecase.ContactUseCase
	log *logger.Logger
}

// NewContactHandler construye el handler inyectando el caso de uso.
func NewContactHandler(uc *usecase.ContactUseCase, log *logger.Logger) *ContactHandler {
	return &ContactHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Enviar formulario de contacto
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContactRequest  true  "Datos del formulario"
// @Success      201   {object}  dto.Envelope{data=dto.ContactCreatedResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/contacts [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContactRequest
	if err := parseBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, MsgInvalidBody)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, msgContactNotFound, "Error submitting contact form")
	}
	return ok(c, fiber.StatusCreated, "Contact submission received successfully", out)
}

// List godoc
// @Summary      Listar solicitudes de contacto
// @Tags         contacts
// @Produce      json
// @Param        status  query  string  false  "Filtro por estado"  Enums(new, in_progress, resolved, closed)
// @Param        limit   query  int     false  "Límite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.Envelope{data=dto.ContactListResponse}
// @Router       /api/contacts [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	in := dto.ListContactsRequest{Status: strings.TrimSpace(c.Query("status"))}
	in.Limit = c.QueryInt("limit", dto.DefaultLimit)
	in.Offset = c.QueryInt("offset", 0)

	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, msgContactNotFound, "Error retrieving contacts")
	}
	return ok(c, fiber.StatusOK, "Contacts retrieved successfully", out)
}

// GetByID godoc
// @Summary      Obtener solicitud por ID
// @Tags         contacts
// @Produce      json
// @Param        id   path  int  true  "ID de la solicitud"
// @Success      200  {object}  dto.Envelope{data=dto.ContactResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/contacts/{id} [get]
func (h *ContactHandler) GetByID(c *fiber.Ctx) error {
	raw := c.Params("id")
	if raw == "" {
		raw = c.Query("id")
	}
	id, err := dto.ParseContactID(raw)
	if err != nil {
		return respondError(c, h.log, err, msgContactNotFound, "Error retrieving contact")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err, msgContactNotFound, "Error retrieving contact")
	}
	return ok(c, fiber.StatusOK, "Contact retrieved successfully", out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una solicitud
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID de la solicitud"
// @Param        body  body  dto.UpdateStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.Envelope{data=dto.StatusUpdatedResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/contacts/{id}/status [put]
func (h *ContactHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := parseBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, MsgInvalidBody)
	}
	// En /contacts/:id/status el ID de la ruta manda sobre el del cuerpo.
	if raw := c.Params("id"); raw != "" {
		id, err := dto.ParseContactID(raw)
		if err != nil {
			return respondError(c, h.log, err, msgContactNotFound, "Error updating contact status")
		}
		in.ID = dto.ContactID(id)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, msgContactNotFound, "Error updating contact status")
	}
	return ok(c, fiber.StatusOK, "Contact status updated successfully", out)
}
