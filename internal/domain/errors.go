package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicateEmail     = errors.New("el email ya está registrado")
	ErrWeakPassword       = errors.New("la contraseña debe tener al menos 6 caracteres")
	ErrInvalidCredentials = errors.New("credenciales inválidas o email sin verificar")
	ErrValidation         = errors.New("entrada inválida")
	ErrStorage            = errors.New("error de almacenamiento")
	ErrQuotaExceeded      = errors.New("cuota de almacenamiento excedida")
	ErrSelfDelete         = errors.New("no se puede eliminar la propia cuenta")
	ErrNotImplemented     = errors.New("operación no implementada")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// ValidationError describe un campo inválido. errors.Is(err, ErrValidation) es true.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError construye un error de validación para el campo indicado.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// StorageError envuelve un fallo del almacenamiento para que errors.Is(err, ErrStorage) sea true.
func StorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
