package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrNoInspections = errors.New("la orden no tiene inspecciones que reconciliar")
)

// IncompleteInspectionsError indica que la reconciliación no puede iniciar
// porque quedan inspecciones sin verificar. Remaining es la cantidad pendiente,
// que se reporta al cliente HTTP.
type IncompleteInspectionsError struct {
	Remaining int
}

func (e *IncompleteInspectionsError) Error() string {
	return fmt.Sprintf("quedan %d inspecciones sin verificar", e.Remaining)
}
