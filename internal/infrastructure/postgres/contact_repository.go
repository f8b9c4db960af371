package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bdenterprises/backend-api/internal/domain/entity"
	"github.com/bdenterprises/backend-api/internal/domain/repository"
)

// Asegura que ContactRepo implementa repository.ContactRepository.
var _ repository.ContactRepository = (*ContactRepo)(nil)

const contactColumns = `
	id, first_name, last_name, email, phone, company_name, service_type, message,
	preferred_contact_method, status, created_at, updated_at`

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	db ConnProvider
}

// NewContactRepository construye el adaptador de persistencia para solicitudes de contacto.
func NewContactRepository(db ConnProvider) *ContactRepo {
	return &ContactRepo{db: db}
}

// Create persiste una nueva solicitud y devuelve el ID generado.
func (r *ContactRepo) Create(ctx context.Context, c *entity.ContactSubmission) (int64, error) {
	query := `
		INSERT INTO contact_submissions
			(first_name, last_name, email, phone, company_name, service_type, message, preferred_contact_method, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id int64
	err := withConn(ctx, r.db, func(q Querier) error {
		return q.QueryRow(ctx, query,
			c.FirstName, c.LastName, c.Email, c.Phone, c.CompanyName, c.ServiceType,
			c.Message, c.PreferredContactMethod, c.Status,
		).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}
	return id, nil
}

// GetByID obtiene una solicitud por ID; nil, nil si no existe.
func (r *ContactRepo) GetByID(ctx context.Context, id int64) (*entity.ContactSubmission, error) {
	query := `SELECT` + contactColumns + ` FROM contact_submissions WHERE id = $1`
	var c entity.ContactSubmission
	err := withConn(ctx, r.db, func(q Querier) error {
		return q.QueryRow(ctx, query, id).Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CompanyName, &c.ServiceType,
			&c.Message, &c.PreferredContactMethod, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		)
	})
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

// List devuelve solicitudes más recientes primero, con filtro opcional por estado.
func (r *ContactRepo) List(ctx context.Context, f repository.ContactFilter) ([]*entity.ContactSubmission, error) {
	query, args := buildContactListQuery(f)

	var list []*entity.ContactSubmission
	err := withConn(ctx, r.db, func(q Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var c entity.ContactSubmission
			if err := rows.Scan(
				&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CompanyName, &c.ServiceType,
				&c.Message, &c.PreferredContactMethod, &c.Status, &c.CreatedAt, &c.UpdatedAt,
			); err != nil {
				return fmt.Errorf("scan contact: %w", err)
			}
			list = append(list, &c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return list, nil
}

// buildContactListQuery arma la consulta con placeholders numerados; ningún valor se interpola.
func buildContactListQuery(f repository.ContactFilter) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, 3)

	sb.WriteString(`SELECT` + contactColumns + ` FROM contact_submissions`)
	if f.Status != "" {
		args = append(args, f.Status)
		sb.WriteString(` WHERE status = $` + strconv.Itoa(len(args)))
	}
	sb.WriteString(` ORDER BY created_at DESC, id DESC`)
	if f.Limit > 0 {
		args = append(args, f.Limit)
		sb.WriteString(` LIMIT $` + strconv.Itoa(len(args)))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		sb.WriteString(` OFFSET $` + strconv.Itoa(len(args)))
	}
	return sb.String(), args
}

// Exists informa si existe una solicitud con ese ID.
func (r *ContactRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM contact_submissions WHERE id = $1)`
	var exists bool
	err := withConn(ctx, r.db, func(q Querier) error {
		return q.QueryRow(ctx, query, id).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("check contact %d: %w", id, err)
	}
	return exists, nil
}

// UpdateStatus cambia el estado y updated_at; false si ninguna fila coincide.
func (r *ContactRepo) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	const query = `
		UPDATE contact_submissions
		   SET status = $1, updated_at = NOW()
		 WHERE id = $2`
	var affected int64
	err := withConn(ctx, r.db, func(q Querier) error {
		cmd, err := q.Exec(ctx, query, status, id)
		if err != nil {
			return err
		}
		affected = cmd.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("update contact status: %w", err)
	}
	return affected > 0, nil
}
