package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bdenterprises/backend-api/internal/application/usecase"
	"github.com/bdenterprises/backend-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ContactUC  *usecase.ContactUseCase
	CompanyUC  *usecase.CompanyUseCase
	LocationUC *usecase.LocationUseCase
	Log        *logger.Logger
}

// Router registra las rutas canónicas. Se montan detrás de NormalizePath, que ya quitó
// el prefijo /api y tradujo los alias.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/", Health)
	app.Get("/health", Health)

	// Contactos
	contactHandler := NewContactHandler(deps.ContactUC, log)
	app.Post("/contacts", contactHandler.Create)
	app.Get("/contacts", contactHandler.List)
	app.Get("/contacts/:id", contactHandler.GetByID)
	app.Put("/contacts/:id/status", contactHandler.UpdateStatus)
	app.Post("/contacts/:id/status", contactHandler.UpdateStatus)

	// Rutas estilo script (id por query o en el cuerpo)
	app.Get("/get_contacts", contactHandler.List)
	app.Get("/get_contact", contactHandler.GetByID)
	app.Post("/update_status", contactHandler.UpdateStatus)
	app.Put("/update_status", contactHandler.UpdateStatus)

	// Empresa
	companyHandler := NewCompanyHandler(deps.CompanyUC, log)
	app.Get("/company_info", companyHandler.Info)
	app.Get("/social_media", companyHandler.SocialMedia)

	// Oficinas
	locationHandler := NewLocationHandler(deps.LocationUC, log)
	app.Get("/locations", locationHandler.List)
	app.Get("/locations/main", locationHandler.Main)
}
