package repository

import (
	"context"

	"github.com/bdenterprises/backend-api/internal/domain/entity"
)

// CompanyInfoRepository lectura de los datos de contacto activos de la empresa.
type CompanyInfoRepository interface {
	ListActive(ctx context.Context) ([]*entity.CompanyContactInfo, error)
}

// SocialMediaRepository lectura de las redes sociales activas, ordenadas por plataforma.
type SocialMediaRepository interface {
	ListActive(ctx context.Context) ([]*entity.SocialMediaLink, error)
}

// LocationRepository lectura de oficinas activas.
type LocationRepository interface {
	// ListActive ordena la oficina principal primero y luego por nombre.
	ListActive(ctx context.Context) ([]*entity.CompanyLocation, error)
	// GetMain devuelve nil, nil si no hay oficina principal activa.
	GetMain(ctx context.Context) (*entity.CompanyLocation, error)
}
