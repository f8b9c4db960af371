package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// ValidationError error de validación con el mensaje que se devuelve al cliente tal cual.
// errors.Is(err, ErrInvalidInput) es true para cualquier ValidationError.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError con el mensaje dado.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// MissingFieldsError nombra todos los campos requeridos ausentes, en el orden recibido.
func MissingFieldsError(fields []string) error {
	return &ValidationError{Message: "Missing required fields: " + strings.Join(fields, ", ")}
}
