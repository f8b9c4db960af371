package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bdenterprises/backend-api/pkg/logger"
)

// RequestLogger registra cada petición a nivel debug; sin efecto si el logger no es verboso.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !log.Verbose() {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("url", c.OriginalURL()).
			Int("status", statusOf(c, err)).
			Dur("latency", time.Since(start)).
			Str("request_id", requestID(c)).
			Msg("petición HTTP")
		return err
	}
}

// RequestTimeout limita la duración del contexto que los handlers pasan a la base.
func RequestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if d <= 0 {
			return c.Next()
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
