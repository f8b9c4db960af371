package usecase

import (
	"context"

	"github.com/bdenterprises/backend-api/internal/application/dto"
	"github.com/bdenterprises/backend-api/internal/domain/repository"
)

// CompanyUseCase expone los datos públicos de la empresa (contacto y redes sociales).
type CompanyUseCase struct {
	info   repository.CompanyInfoRepository
	social repository.SocialMediaRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de lectura.
func NewCompanyUseCase(info repository.CompanyInfoRepository, social repository.SocialMediaRepository) *CompanyUseCase {
	return &CompanyUseCase{info: info, social: social}
}

// Info devuelve los datos de contacto activos indexados por contact_type.
// Si dos filas comparten contact_type gana la de mayor ID.
func (uc *CompanyUseCase) Info(ctx context.Context) (dto.CompanyInfoResponse, error) {
	rows, err := uc.info.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make(dto.CompanyInfoResponse, len(rows))
	for _, r := range rows {
		if !r.IsActive {
			continue
		}
		out[r.ContactType] = dto.ContactInfoEntry{Value: r.Value, Label: r.Label}
	}
	return out, nil
}

// SocialMedia devuelve las redes sociales activas ordenadas por plataforma.
func (uc *CompanyUseCase) SocialMedia(ctx context.Context) ([]dto.SocialMediaLinkResponse, error) {
	rows, err := uc.social.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SocialMediaLinkResponse, 0, len(rows))
	for _, r := range rows {
		if !r.IsActive {
			continue
		}
		out = append(out, dto.SocialMediaLinkResponse{
			ID:       r.ID,
			Platform: r.Platform,
			URL:      r.URL,
			IconName: r.IconName,
		})
	}
	return out, nil
}
