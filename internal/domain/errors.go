package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// StockError es un ErrInsufficientStock que además lleva la cantidad
// disponible, para que el caller pueda responder "solo quedan N unidades".
// errors.Is(err, ErrInsufficientStock) sigue funcionando vía Is.
type StockError struct {
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d", e.Available)
}

func (e *StockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
