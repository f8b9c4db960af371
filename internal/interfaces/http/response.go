package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bdenterprises/backend-api/internal/application/dto"
	"github.com/bdenterprises/backend-api/internal/domain"
	"github.com/bdenterprises/backend-api/pkg/logger"
)

// Mensajes de error comunes a todas las rutas.
const (
	MsgEndpointNotFound = "Endpoint not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgInvalidBody      = "Invalid request body"
	MsgInternal         = "Internal server error"
)

func ok(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.OK(message, data))
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Fail(message))
}

// respondError traduce errores de dominio a envelope + status. Los errores del store se
// registran completos y al cliente solo llega el mensaje genérico internal.
func respondError(c *fiber.Ctx, log *logger.Logger, err error, notFound, internal string) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return fail(c, fiber.StatusBadRequest, ve.Message)
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, notFound)
	}
	ev := log.Error().Err(err).
		Str("method", c.Method()).
		Str("route", c.Route().Path).
		Str("request_id", requestID(c))
	if errors.Is(err, context.DeadlineExceeded) {
		ev = ev.Bool("timeout", true)
	}
	ev.Msg(internal)
	return fail(c, fiber.StatusInternalServerError, internal)
}

// ErrorHandler convierte cualquier error que escape de un handler (404/405 del router,
// panics recuperados, body demasiado grande) en el envelope estándar.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		msg := MsgInternal
		switch {
		case code == fiber.StatusNotFound:
			msg = MsgEndpointNotFound
		case code == fiber.StatusMethodNotAllowed:
			msg = MsgMethodNotAllowed
		case code == fiber.StatusUnprocessableEntity || code == fiber.StatusBadRequest:
			code, msg = fiber.StatusBadRequest, MsgInvalidBody
		case code >= fiber.StatusInternalServerError:
			code = fiber.StatusInternalServerError
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Str("request_id", requestID(c)).
				Msg("error no controlado")
		default:
			msg = fe.Message
		}
		return fail(c, code, msg)
	}
}

// statusOf devuelve el status final de la respuesta considerando el error que aún no pasó por ErrorHandler.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
