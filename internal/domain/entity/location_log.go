package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cambio de ubicación registrados en la auditoría.
const (
	LogTypeAdd    = "add"    // mercancía entra a la ubicación
	LogTypeRemove = "remove" // mercancía sale de la ubicación
)

// LogLocationChange es un registro inmutable de auditoría: un delta de cantidad
// en una ubicación, con el lote afectado, la orden que lo causó y el bodeguero
// responsable. Solo se crea; nunca se actualiza ni elimina.
type LogLocationChange struct {
	ID         string
	LocationID string
	Type       string // add | remove
	BatchID    string
	Quantity   decimal.Decimal // delta siempre positivo; el signo lo da Type
	OrderID    string
	ManagerID  string
	CreatedAt  time.Time
}
