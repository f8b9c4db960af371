package usecase

import (
	"context"

	"github.com/bdenterprises/backend-api/internal/application/dto"
	"github.com/bdenterprises/backend-api/internal/domain"
	"github.com/bdenterprises/backend-api/internal/domain/entity"
	"github.com/bdenterprises/backend-api/internal/domain/repository"
)

// LocationUseCase expone las oficinas activas de la empresa.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// List devuelve las oficinas activas, la principal primero y luego por nombre.
func (uc *LocationUseCase) List(ctx context.Context) ([]dto.LocationResponse, error) {
	rows, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(rows))
	for _, l := range rows {
		out = append(out, entityToLocationResponse(l))
	}
	return out, nil
}

// Main devuelve la oficina principal activa; domain.ErrNotFound si no hay ninguna.
func (uc *LocationUseCase) Main(ctx context.Context) (*dto.LocationResponse, error) {
	l, err := uc.repo.GetMain(ctx)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	out := entityToLocationResponse(l)
	return &out, nil
}

// entityToLocationResponse convierte NUMERIC a float64 en el borde para que el JSON lleve números.
func entityToLocationResponse(l *entity.CompanyLocation) dto.LocationResponse {
	return dto.LocationResponse{
		ID:           l.ID,
		Name:         l.Name,
		Latitude:     l.Latitude.InexactFloat64(),
		Longitude:    l.Longitude.InexactFloat64(),
		Address:      l.Address,
		City:         l.City,
		State:        l.State,
		ZipCode:      l.ZipCode,
		Phone:        l.Phone,
		Email:        l.Email,
		IsMainOffice: l.IsMainOffice,
		IsActive:     l.IsActive,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
