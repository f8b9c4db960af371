package entity

// CompanyContactInfo dato de contacto de la empresa (teléfono, email, whatsapp...).
// ContactType es la clave con la que se presenta al cliente.
type CompanyContactInfo struct {
	ID          int64
	ContactType string
	Value       string
	Label       string
	IsActive    bool
}

// SocialMediaLink enlace a una red social de la empresa.
type SocialMediaLink struct {
	ID       int64
	Platform string
	URL      string
	IconName string
	IsActive bool
}
