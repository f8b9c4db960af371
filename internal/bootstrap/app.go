// Package bootstrap construye la aplicación completa a partir de la configuración.
package bootstrap

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bdenterprises/backend-api/internal/application/usecase"
	"github.com/bdenterprises/backend-api/internal/infrastructure/postgres"
	httpRouter "github.com/bdenterprises/backend-api/internal/interfaces/http"
	"github.com/bdenterprises/backend-api/pkg/config"
	"github.com/bdenterprises/backend-api/pkg/logger"
)

const pingTimeout = 5 * time.Second

// App agrupa la app Fiber y los recursos que hay que cerrar al terminar.
type App struct {
	Config *config.Config
	Log    *logger.Logger
	Fiber  *fiber.App
	pool   *pgxpool.Pool
}

// New carga la configuración, abre el pool y arma el servidor HTTP.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	return NewWithConfig(ctx, cfg, log)
}

// NewWithConfig igual que New pero con configuración y logger ya resueltos.
func NewWithConfig(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	db := postgres.NewPoolProvider(pool)

	// Un fallo de conectividad al arrancar se registra pero no detiene el proceso:
	// el pool reintenta en cada petición.
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.Ping(pingCtx); err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL fallida")
	} else {
		log.Info().Str("db", cfg.DB.DBName).Msg("conexión a PostgreSQL correcta")
	}

	contactRepo := postgres.NewContactRepository(db)
	companyInfoRepo := postgres.NewCompanyInfoRepository(db)
	socialRepo := postgres.NewSocialMediaRepository(db)
	locationRepo := postgres.NewLocationRepository(db)

	contactUC := usecase.NewContactUseCase(contactRepo)
	companyUC := usecase.NewCompanyUseCase(companyInfoRepo, socialRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)

	app := httpRouter.NewServer(httpRouter.ServerConfig{
		AppName:        cfg.App.Name,
		CORS:           cfg.CORS,
		RequestTimeout: cfg.DB.QueryTimeout,
		Metrics:        httpRouter.NewMetrics(),
		EnableDocs:     !cfg.IsProduction(),
	}, httpRouter.RouterDeps{
		ContactUC:  contactUC,
		CompanyUC:  companyUC,
		LocationUC: locationUC,
		Log:        log,
	})

	return &App{Config: cfg, Log: log, Fiber: app, pool: pool}, nil
}

// Close libera el pool de conexiones.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
