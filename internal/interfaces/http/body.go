package http

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodifica JSON o formulario. Un cuerpo vacío deja out sin cambios para que la
// validación reporte los campos ausentes; sin Content-Type se asume JSON.
func parseBody(c *fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if c.Get(fiber.HeaderContentType) == "" {
		return json.Unmarshal(body, out)
	}
	return c.BodyParser(out)
}
