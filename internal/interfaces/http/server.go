package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/bdenterprises/backend-api/docs"
	"github.com/bdenterprises/backend-api/pkg/config"
	"github.com/bdenterprises/backend-api/pkg/logger"
)

const bodyLimit = 10 * 1024 * 1024

// ServerConfig opciones de la app Fiber independientes de los casos de uso.
type ServerConfig struct {
	AppName        string
	CORS           config.CORSConfig
	RequestTimeout time.Duration
	Metrics        *Metrics // nil desactiva /metrics
	EnableDocs     bool
}

// NewServer arma la app completa: middlewares, normalización de rutas y handlers.
// La usan tanto el binario que escucha en un puerto como el shim serverless.
func NewServer(cfg ServerConfig, deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: ErrorHandler(deps.Log),
		BodyLimit:    bodyLimit,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(CORS(cfg.CORS))
	app.Use(RequestLogger(deps.Log))

	if cfg.Metrics != nil {
		app.Use(cfg.Metrics.Middleware())
		app.Get("/metrics", cfg.Metrics.Handler())
	}

	// Swagger UI: http://localhost:<port>/docs
	if cfg.EnableDocs {
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
			Path:        "docs",
			Title:       "BD Enterprises API",
		}))
	}

	app.Use(RequestTimeout(cfg.RequestTimeout))
	app.Use(NormalizePath())

	Router(app, deps)
	return app
}
