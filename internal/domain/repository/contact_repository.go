package repository

import (
	"context"

	"github.com/bdenterprises/backend-api/internal/domain/entity"
)

// ContactFilter criterios de listado de solicitudes de contacto.
type ContactFilter struct {
	Status string // vacío = todos
	Limit  int
	Offset int
}

// ContactRepository define el puerto de persistencia para ContactSubmission (DIP).
// La implementación vive en infrastructure.
type ContactRepository interface {
	// Create inserta la solicitud y devuelve el ID generado.
	Create(ctx context.Context, c *entity.ContactSubmission) (int64, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.ContactSubmission, error)
	List(ctx context.Context, f ContactFilter) ([]*entity.ContactSubmission, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// UpdateStatus devuelve false si ninguna fila fue actualizada.
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
}
