package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameAlreadyExists = errors.New("el username ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrConflict              = errors.New("conflicto con el estado actual")
)

// InsufficientStockError indica que una salida pide más cantidad de la que
// los lotes del material pueden cubrir. Siempre reporta el faltante para que
// el caller pueda ajustar la cantidad en vez de adivinar.
type InsufficientStockError struct {
	MaterialID string
	Available  int64
	Requested  int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para material %s: disponible %d, solicitado %d",
		e.MaterialID, e.Available, e.Requested)
}

// IsInsufficientStock verifica si err es (o envuelve) un InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}
