package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/bdenterprises/backend-api/internal/domain"
	"github.com/bdenterprises/backend-api/internal/domain/entity"
)

// CreateContactRequest entrada del formulario público de contacto.
type CreateContactRequest struct {
	FirstName       string `json:"firstName" form:"firstName"`
	LastName        string `json:"lastName" form:"lastName"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	CompanyName     string `json:"companyName" form:"companyName"`
	ServiceType     string `json:"serviceType" form:"serviceType"`
	Message         string `json:"message" form:"message"`
	PreferredMethod string `json:"preferredMethod" form:"preferredMethod"`
}

// Normalize recorta espacios y normaliza a NFC todos los campos de texto.
func (r *CreateContactRequest) Normalize() {
	for _, f := range []*string{
		&r.FirstName, &r.LastName, &r.Email, &r.Phone,
		&r.CompanyName, &r.ServiceType, &r.Message, &r.PreferredMethod,
	} {
		*f = cleanText(*f)
	}
}

// Validate exige firstName, lastName, email y message; el error nombra todos los ausentes.
func (r CreateContactRequest) Validate() error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
		{"message", r.Message},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return domain.MissingFieldsError(missing)
	}
	return nil
}

// ContactID identificador numérico que acepta tanto 12 como "12" en JSON.
type ContactID int64

// UnmarshalJSON acepta número, string numérico o null.
func (id *ContactID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*id = 0
			return nil
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("id inválido %q", s)
	}
	*id = ContactID(n)
	return nil
}

// ParseContactID convierte un parámetro de ruta o query en ID positivo.
func ParseContactID(raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.NewValidationError("Invalid or missing contact ID")
	}
	return n, nil
}

// UpdateStatusRequest entrada para cambiar el estado de una solicitud.
type UpdateStatusRequest struct {
	ID     ContactID `json:"id" form:"id"`
	Status string    `json:"status" form:"status"`
}

// Validate exige id y status, y que status pertenezca al conjunto fijo.
func (r UpdateStatusRequest) Validate() error {
	var missing []string
	if r.ID <= 0 {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(r.Status) == "" {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return domain.MissingFieldsError(missing)
	}
	if !entity.IsValidContactStatus(r.Status) {
		return InvalidStatusError()
	}
	return nil
}

// InvalidStatusError error de validación que enumera los estados válidos.
func InvalidStatusError() error {
	return domain.NewValidationError("Invalid status. Valid values: " + strings.Join(entity.ContactStatuses, ", "))
}

// ListContactsRequest filtros del listado de solicitudes.
type ListContactsRequest struct {
	Status string `query:"status"`
	PageRequest
}

// ContactResponse salida de una solicitud de contacto (columnas en snake_case).
type ContactResponse struct {
	ID                     int64     `json:"id"`
	FirstName              string    `json:"first_name"`
	LastName               string    `json:"last_name"`
	Email                  string    `json:"email"`
	Phone                  *string   `json:"phone"`
	CompanyName            *string   `json:"company_name"`
	ServiceType            *string   `json:"service_type"`
	Message                string    `json:"message"`
	PreferredContactMethod string    `json:"preferred_contact_method"`
	Status                 string    `json:"status"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ContactListResponse listado de solicitudes con su cantidad.
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Count    int               `json:"count"`
}

// ContactCreatedResponse datos devueltos al crear una solicitud.
type ContactCreatedResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// StatusUpdatedResponse datos devueltos al cambiar el estado.
type StatusUpdatedResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
