package dto

import "time"

// ContactInfoEntry valor y etiqueta de un dato de contacto de la empresa.
type ContactInfoEntry struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CompanyInfoResponse datos de contacto indexados por contact_type (phone, email, whatsapp...).
type CompanyInfoResponse map[string]ContactInfoEntry

// SocialMediaLinkResponse salida de una red social.
type SocialMediaLinkResponse struct {
	ID       int64  `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	IconName string `json:"icon_name"`
}

// LocationResponse salida de una oficina con tipos numéricos y booleanos estables.
type LocationResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	IsMainOffice bool      `json:"is_main_office"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HealthResponse marcador de salud.
type HealthResponse struct {
	Status string `json:"status"`
}
