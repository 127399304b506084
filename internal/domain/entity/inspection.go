package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una inspección (hoja de conteo de una ubicación).
const (
	InspectionStatusDraft    = "draft"    // generada al crear la orden
	InspectionStatusChecking = "checking" // bodeguero registrando conteos
	InspectionStatusChecked  = "checked"  // conteo verificado, lista para reconciliar
)

// Clasificación de un ítem de conteo al comparar cantidad contada vs esperada.
const (
	CheckValid         = "valid"          // contada == esperada
	CheckOverExpected  = "over_expected"  // contada > esperada: el paquete pertenece físicamente a esta ubicación
	CheckUnderExpected = "under_expected" // contada < esperada: faltante
)

// ClassifyCount clasifica un conteo comparando la cantidad contada contra la esperada.
func ClassifyCount(expected, actual decimal.Decimal) string {
	switch actual.Cmp(expected) {
	case 1:
		return CheckOverExpected
	case -1:
		return CheckUnderExpected
	default:
		return CheckValid
	}
}

// CheckItem es una línea de la hoja de conteo: un paquete con su cantidad
// esperada y la cantidad físicamente contada. Como máximo un ítem por paquete
// por inspección; el mismo paquete puede aparecer en inspecciones de distintas
// ubicaciones dentro de la misma orden.
type CheckItem struct {
	ID               string
	InspectionID     string
	PackageID        string
	ExpectedQuantity decimal.Decimal
	ActualQuantity   decimal.Decimal
	Classification   string // valid | over_expected | under_expected ("" hasta contar)
}

// Inspection es la hoja de conteo de una ubicación dentro de una orden.
// Existe exactamente una por ubicación ocupada por orden.
type Inspection struct {
	ID         string
	OrderID    string
	LocationID string
	Status     string
	CheckerID  string // bodeguero que realizó el conteo (opcional hasta checking)
	Notes      string
	CheckList  []CheckItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
