package inventorycheck

import (
	"context"

	"github.com/avillareal/farmastock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la reconciliación:
// o se aplican todas las decisiones y la orden queda completed, o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		inspectionRepo repository.InspectionRepository,
		packageRepo repository.PackageRepository,
		locationRepo repository.LocationRepository,
		logRepo repository.LocationLogRepository,
	) error) error
}

// CountSheetGenerator genera la hoja de conteo imprimible de una inspección.
type CountSheetGenerator interface {
	GenerateCountSheet(ctx context.Context, sheet *CountSheetData) ([]byte, error)
}

// CountSheetData datos ya resueltos para renderizar la hoja de conteo.
type CountSheetData struct {
	OrderID      string
	LocationCode string
	Status       string
	Rows         []CountSheetRow
}

// CountSheetRow una línea de la hoja: paquete + lote + cantidad esperada.
type CountSheetRow struct {
	PackageID    string
	MedicineName string
	BatchCode    string
	Expected     string
	Actual       string
}
