package postgres

import (
	"context"
	"fmt"

	"github.com/bdenterprises/backend-api/internal/domain/entity"
	"github.com/bdenterprises/backend-api/internal/domain/repository"
)

var (
	_ repository.CompanyInfoRepository = (*CompanyInfoRepo)(nil)
	_ repository.SocialMediaRepository = (*SocialMediaRepo)(nil)
)

// CompanyInfoRepo lectura de company_contact_info.
type CompanyInfoRepo struct {
	db ConnProvider
}

// NewCompanyInfoRepository construye el adaptador.
func NewCompanyInfoRepository(db ConnProvider) *CompanyInfoRepo {
	return &CompanyInfoRepo{db: db}
}

// ListActive devuelve los datos de contacto activos ordenados por ID.
func (r *CompanyInfoRepo) ListActive(ctx context.Context) ([]*entity.CompanyContactInfo, error) {
	const query = `
		SELECT id, contact_type, value, COALESCE(label, ''), is_active
		  FROM company_contact_info
		 WHERE is_active = TRUE
		 ORDER BY id ASC`
	var list []*entity.CompanyContactInfo
	err := withConn(ctx, r.db, func(q Querier) error {
		rows, err := q.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var c entity.CompanyContactInfo
			if err := rows.Scan(&c.ID, &c.ContactType, &c.Value, &c.Label, &c.IsActive); err != nil {
				return fmt.Errorf("scan company info: %w", err)
			}
			list = append(list, &c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list company info: %w", err)
	}
	return list, nil
}

// SocialMediaRepo lectura de social_media_links.
type SocialMediaRepo struct {
	db ConnProvider
}

// NewSocialMediaRepository construye el adaptador.
func NewSocialMediaRepository(db ConnProvider) *SocialMediaRepo {
	return &SocialMediaRepo{db: db}
}

// ListActive devuelve las redes activas ordenadas por plataforma.
func (r *SocialMediaRepo) ListActive(ctx context.Context) ([]*entity.SocialMediaLink, error) {
	const query = `
		SELECT id, platform, url, COALESCE(icon_name, ''), is_active
		  FROM social_media_links
		 WHERE is_active = TRUE
		 ORDER BY platform ASC`
	var list []*entity.SocialMediaLink
	err := withConn(ctx, r.db, func(q Querier) error {
		rows, err := q.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var s entity.SocialMediaLink
			if err := rows.Scan(&s.ID, &s.Platform, &s.URL, &s.IconName, &s.IsActive); err != nil {
				return fmt.Errorf("scan social link: %w", err)
			}
			list = append(list, &s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	return list, nil
}
