package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bdenterprises/backend-api/internal/bootstrap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx)
	if err != nil {
		panic("iniciar aplicación: " + err.Error())
	}
	defer app.Close()

	cfg, log := app.Config, app.Log
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("port", cfg.HTTP.Port).
		Strs("cors_origins", cfg.CORS.Origins()).
		Msg("iniciando servidor")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Fiber.Listen(cfg.HTTP.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.Fiber.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
	}
	log.Info().Msg("aplicación detenida")
}
