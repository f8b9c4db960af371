package usecase

import (
	"context"
	"fmt"

	"github.com/bdenterprises/backend-api/internal/application/dto"
	"github.com/bdenterprises/backend-api/internal/domain"
	"github.com/bdenterprises/backend-api/internal/domain/entity"
	"github.com/bdenterprises/backend-api/internal/domain/repository"
)

// ContactUseCase aplica reglas de negocio para solicitudes de contacto.
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase construye el caso de uso con el puerto de persistencia.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// Create valida y registra una solicitud nueva con estado "new".
func (uc *ContactUseCase) Create(ctx context.Context, in dto.CreateContactRequest) (*dto.ContactCreatedResponse, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	method := in.PreferredMethod
	if method == "" {
		method = entity.DefaultContactMethod
	}
	contact := &entity.ContactSubmission{
		FirstName:              in.FirstName,
		LastName:               in.LastName,
		Email:                  in.Email,
		Phone:                  optional(in.Phone),
		CompanyName:            optional(in.CompanyName),
		ServiceType:            optional(in.ServiceType),
		Message:                in.Message,
		PreferredContactMethod: method,
		Status:                 entity.ContactStatusNew,
	}
	id, err := uc.repo.Create(ctx, contact)
	if err != nil {
		return nil, err
	}
	return &dto.ContactCreatedResponse{ID: id, Email: contact.Email}, nil
}

// List lista solicitudes, opcionalmente filtradas por estado, más recientes primero.
func (uc *ContactUseCase) List(ctx context.Context, in dto.ListContactsRequest) (*dto.ContactListResponse, error) {
	if in.Status != "" && !entity.IsValidContactStatus(in.Status) {
		return nil, dto.InvalidStatusError()
	}
	in.DefaultPage()
	list, err := uc.repo.List(ctx, repository.ContactFilter{
		Status: in.Status,
		Limit:  in.Limit,
		Offset: in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContactResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToContactResponse(c))
	}
	return &dto.ContactListResponse{Contacts: items, Count: len(items)}, nil
}

// GetByID obtiene una solicitud; domain.ErrNotFound si no existe.
func (uc *ContactUseCase) GetByID(ctx context.Context, id int64) (*dto.ContactResponse, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("Invalid or missing contact ID")
	}
	contact, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	return entityToContactResponse(contact), nil
}

// UpdateStatus cambia el estado tras comprobar que la solicitud existe.
// La comprobación y el UPDATE no son atómicos; si el UPDATE no afecta filas también es ErrNotFound.
func (uc *ContactUseCase) UpdateStatus(ctx context.Context, in dto.UpdateStatusRequest) (*dto.StatusUpdatedResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	id := int64(in.ID)
	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	updated, err := uc.repo.UpdateStatus(ctx, id, in.Status)
	if err != nil {
		return nil, fmt.Errorf("contact %d: %w", id, err)
	}
	if !updated {
		return nil, domain.ErrNotFound
	}
	return &dto.StatusUpdatedResponse{ID: id, Status: in.Status}, nil
}

func entityToContactResponse(c *entity.ContactSubmission) *dto.ContactResponse {
	if c == nil {
		return nil
	}
	return &dto.ContactResponse{
		ID:                     c.ID,
		FirstName:              c.FirstName,
		LastName:               c.LastName,
		Email:                  c.Email,
		Phone:                  c.Phone,
		CompanyName:            c.CompanyName,
		ServiceType:            c.ServiceType,
		Message:                c.Message,
		PreferredContactMethod: c.PreferredContactMethod,
		Status:                 c.Status,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
