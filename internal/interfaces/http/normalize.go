package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// pathAliases grafías alternativas aceptadas por compatibilidad con el frontend.
var pathAliases = map[string]string{
	"company-info":   "company_info",
	"social-media":   "social_media",
	"locations_main": "locations/main",
}

// NormalizePath reescribe la ruta antes del enrutado: quita barras al inicio y final,
// el prefijo opcional "api/" y traduce los alias a la ruta canónica.
func NormalizePath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if p := normalizePath(c.Path()); p != c.Path() {
			c.Path(p)
		}
		return c.Next()
	}
}

func normalizePath(raw string) string {
	p := strings.Trim(raw, "/")
	if p == "api" {
		p = ""
	}
	p = strings.TrimPrefix(p, "api/")
	p = strings.Trim(p, "/")
	if alias, ok := pathAliases[p]; ok {
		p = alias
	}
	return "/" + p
}
