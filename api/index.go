// Package handler expone la app como función HTTP para plataformas serverless (Vercel).
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/bdenterprises/backend-api/internal/application/dto"
	"github.com/bdenterprises/backend-api/internal/bootstrap"
	httpRouter "github.com/bdenterprises/backend-api/internal/interfaces/http"
)

var (
	once    sync.Once
	serve   http.HandlerFunc
	initErr error
)

// Handler punto de entrada por petición. La app se arma una sola vez por instancia.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		app, err := bootstrap.New(context.Background())
		if err != nil {
			initErr = err
			return
		}
		serve = adaptor.FiberApp(app.Fiber)
	})
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(dto.Fail(httpRouter.MsgInternal))
		return
	}
	serve(w, r)
}
