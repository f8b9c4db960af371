package entity

import "time"

// Estados posibles de una solicitud de contacto (deben coincidir con el CHECK de contact_submissions).
const (
	ContactStatusNew        = "new"
	ContactStatusInProgress = "in_progress"
	ContactStatusResolved   = "resolved"
	ContactStatusClosed     = "closed"
)

// ContactStatuses lista ordenada de estados válidos.
var ContactStatuses = []string{
	ContactStatusNew,
	ContactStatusInProgress,
	ContactStatusResolved,
	ContactStatusClosed,
}

// DefaultContactMethod medio de contacto preferido cuando el formulario no lo indica.
const DefaultContactMethod = "email"

// IsValidContactStatus informa si s pertenece al conjunto fijo de estados.
func IsValidContactStatus(s string) bool {
	for _, st := range ContactStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// ContactSubmission solicitud creada desde el formulario público de contacto.
// Solo cambia vía actualización de estado; nunca se elimina desde este sistema.
type ContactSubmission struct {
	ID                     int64
	FirstName              string
	LastName               string
	Email                  string
	Phone                  *string // opcional
	CompanyName            *string // opcional
	ServiceType            *string // opcional
	Message                string
	PreferredContactMethod string
	Status                 string // ver constantes ContactStatus*
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
