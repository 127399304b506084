package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package representa un contenedor físico de un lote de medicamento en una
// ubicación del almacén. La reconciliación puede ajustar su cantidad, moverlo
// de ubicación o eliminarlo si el conteo físico fue cero.
type Package struct {
	ID         string
	BatchID    string
	LocationID string
	Quantity   decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
