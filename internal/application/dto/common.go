package dto

// Envelope cuerpo uniforme {success, message, data} de todas las respuestas HTTP.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// OK envelope de éxito; data nil se serializa como objeto vacío.
func OK(message string, data interface{}) Envelope {
	if data == nil {
		data = struct{}{}
	}
	return Envelope{Success: true, Message: message, Data: data}
}

// Fail envelope de error; data siempre es un arreglo vacío.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message, Data: []interface{}{}}
}

// Valores de paginación para listados.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// PageRequest paginación simple limit/offset.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto y acota Limit a [1, MaxLimit].
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
