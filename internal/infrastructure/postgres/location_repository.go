package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bdenterprises/backend-api/internal/domain/entity"
	"github.com/bdenterprises/backend-api/internal/domain/repository"
)

// Asegura que LocationRepo implementa repository.LocationRepository.
var _ repository.LocationRepository = (*LocationRepo)(nil)

// latitude/longitude se leen como NUMERIC (decimal.Decimal); las columnas de texto opcionales llegan como ''.
const locationColumns = `
	id, name, COALESCE(latitude, 0), COALESCE(longitude, 0),
	COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''), COALESCE(zip_code, ''),
	COALESCE(phone, ''), COALESCE(email, ''),
	is_main_office, is_active, created_at, updated_at`

// LocationRepo lectura de company_locations.
type LocationRepo struct {
	db ConnProvider
}

// NewLocationRepository construye el adaptador.
func NewLocationRepository(db ConnProvider) *LocationRepo {
	return &LocationRepo{db: db}
}

// ListActive devuelve oficinas activas: la principal primero y luego por nombre.
func (r *LocationRepo) ListActive(ctx context.Context) ([]*entity.CompanyLocation, error) {
	query := `SELECT` + locationColumns + `
		  FROM company_locations
		 WHERE is_active = TRUE
		 ORDER BY is_main_office DESC, name ASC`
	var list []*entity.CompanyLocation
	err := withConn(ctx, r.db, func(q Querier) error {
		rows, err := q.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			l, err := scanLocation(rows)
			if err != nil {
				return fmt.Errorf("scan location: %w", err)
			}
			list = append(list, l)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return list, nil
}

// GetMain devuelve la oficina principal activa; nil, nil si no hay.
func (r *LocationRepo) GetMain(ctx context.Context) (*entity.CompanyLocation, error) {
	query := `SELECT` + locationColumns + `
		  FROM company_locations
		 WHERE is_main_office = TRUE AND is_active = TRUE
		 ORDER BY id ASC
		 LIMIT 1`
	var loc *entity.CompanyLocation
	err := withConn(ctx, r.db, func(q Querier) error {
		l, err := scanLocation(q.QueryRow(ctx, query))
		if err != nil {
			return err
		}
		loc = l
		return nil
	})
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get main location: %w", err)
	}
	return loc, nil
}

func scanLocation(row pgx.Row) (*entity.CompanyLocation, error) {
	var l entity.CompanyLocation
	err := row.Scan(
		&l.ID, &l.Name, &l.Latitude, &l.Longitude,
		&l.Address, &l.City, &l.State, &l.ZipCode, &l.Phone, &l.Email,
		&l.IsMainOffice, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
