package http

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bdenterprises/backend-api/pkg/config"
)

var loopbackOrigin = regexp.MustCompile(`^https?://(localhost|127\.0\.0\.1)(:\d+)?$`)

const (
	corsAllowMethods = "GET, POST, PUT, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, Accept"
)

// CORS refleja el Origin solo si está en la lista permitida (o es loopback si se habilita).
// Las peticiones OPTIONS terminan aquí con 200 y sin cuerpo.
func CORS(cfg config.CORSConfig) fiber.Handler {
	allowed := make(map[string]struct{})
	for _, o := range cfg.Origins() {
		allowed[o] = struct{}{}
	}
	isAllowed := func(origin string) bool {
		if origin == "" {
			return false
		}
		if _, ok := allowed[strings.TrimRight(origin, "/")]; ok {
			return true
		}
		return cfg.AllowLoopback && loopbackOrigin.MatchString(origin)
	}

	return func(c *fiber.Ctx) error {
		if origin := c.Get(fiber.HeaderOrigin); isAllowed(origin) {
			c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
			c.Vary(fiber.HeaderOrigin)
		}
		c.Set(fiber.HeaderAccessControlAllowMethods, corsAllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)

		if c.Method() == fiber.MethodOptions {
			c.Status(fiber.StatusOK)
			return nil
		}
		return c.Next()
	}
}
