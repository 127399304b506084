package inventorycheck

import (
	"github.com/shopspring/decimal"

	"github.com/avillareal/farmastock-api/internal/domain/entity"
)

// StockAction es la mutación concreta a aplicar sobre un paquete, ya resuelta
// a partir de su decisión. Sustituye el branching sobre el string de
// clasificación en el punto de aplicación: cada variante porta solo los campos
// que su caso necesita.
type StockAction interface {
	isStockAction()
}

// RemovePackage elimina el paquete (conteo físico cero).
type RemovePackage struct {
	OriginalQuantity decimal.Decimal
	OriginLocationID string
}

// RelocatePackage mueve el paquete a la ubicación donde fue hallado y fija
// su cantidad a lo contado.
type RelocatePackage struct {
	ToLocationID string
	Quantity     decimal.Decimal
}

// AdjustQuantity ajusta la cantidad en la misma ubicación.
// Delta = contado - original; cero significa sin cambio (y sin auditoría).
type AdjustQuantity struct {
	Quantity decimal.Decimal
	Delta    decimal.Decimal
}

func (RemovePackage) isStockAction()   {}
func (RelocatePackage) isStockAction() {}
func (AdjustQuantity) isStockAction()  {}

// ResolveAction deriva la acción a aplicar sobre un paquete existente dada su
// decisión: conteo cero elimina; over_expected reubica a la ubicación de la
// inspección ganadora solo cuando difiere de la actual; cualquier otro caso es
// un ajuste de cantidad en sitio. Un sobrante hallado donde el paquete ya
// estaba no es un movimiento: se audita como un único delta, igual que
// cualquier cambio de cantidad en la misma ubicación.
func ResolveAction(pkg *entity.Package, d Decision) StockAction {
	counted := d.Item.ActualQuantity
	switch {
	case counted.IsZero():
		return RemovePackage{OriginalQuantity: pkg.Quantity, OriginLocationID: pkg.LocationID}
	case d.Item.Classification == entity.CheckOverExpected && d.LocationID != pkg.LocationID:
		return RelocatePackage{ToLocationID: d.LocationID, Quantity: counted}
	default:
		return AdjustQuantity{Quantity: counted, Delta: counted.Sub(pkg.Quantity)}
	}
}
