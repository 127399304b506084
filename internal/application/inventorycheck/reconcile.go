package inventorycheck

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/avillareal/farmastock-api/internal/domain/entity"
	"github.com/avillareal/farmastock-api/internal/domain/repository"
)

// reconcile aplica las decisiones del agregador sobre paquetes y ubicaciones
// dentro de una única transacción y marca la orden como completed. Cualquier
// error aborta la transacción completa: ninguna mutación parcial sobrevive y
// el reintento siempre es seguro.
//
// Las decisiones se aplican secuencialmente en el orden determinista del
// DecisionSet: las escrituras posteriores dependen de lecturas previas del
// mismo paquete y del conteo de ocupación de ubicaciones dentro de la tx.
func (uc *CheckOrderUseCase) reconcile(ctx context.Context, order *entity.InventoryCheckOrder, decisions *DecisionSet) error {
	return uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.InspectionRepository,
		packageRepo repository.PackageRepository,
		locationRepo repository.LocationRepository,
		logRepo repository.LocationLogRepository,
	) error {
		for _, packageID := range decisions.PackageIDs() {
			decision, _ := decisions.Get(packageID)

			// Bloquea la fila del paquete (SELECT FOR UPDATE) para que dos
			// reconciliaciones concurrentes sobre el mismo paquete se serialicen.
			pkg, err := packageRepo.GetForUpdate(packageID)
			if err != nil {
				return err
			}
			if pkg == nil {
				// Pudo haber sido retirado legítimamente entre el conteo y la
				// reconciliación: se omite sin abortar.
				log.Warn().
					Str("order_id", order.ID).
					Str("package_id", packageID).
					Msg("paquete de la decisión ya no existe, se omite")
				continue
			}

			switch action := ResolveAction(pkg, decision).(type) {
			case RemovePackage:
				err = uc.applyRemove(packageRepo, locationRepo, logRepo, order, pkg, action)
			case RelocatePackage:
				err = uc.applyRelocate(packageRepo, locationRepo, logRepo, order, pkg, action)
			case AdjustQuantity:
				err = uc.applyAdjust(packageRepo, logRepo, order, pkg, action)
			}
			if err != nil {
				return err
			}
		}
		return orderRepo.UpdateStatus(order.ID, entity.OrderStatusCompleted)
	})
}

// applyRemove elimina el paquete contado en cero y audita la salida de la
// cantidad original de su ubicación, cuando la había.
func (uc *CheckOrderUseCase) applyRemove(
	packageRepo repository.PackageRepository,
	locationRepo repository.LocationRepository,
	logRepo repository.LocationLogRepository,
	order *entity.InventoryCheckOrder,
	pkg *entity.Package,
	action RemovePackage,
) error {
	if err := packageRepo.Delete(pkg.ID); err != nil {
		return err
	}
	if action.OriginalQuantity.IsPositive() && pkg.BatchID != "" && action.OriginLocationID != "" {
		if err := uc.appendLog(logRepo, order, action.OriginLocationID, entity.LogTypeRemove, pkg.BatchID, action.OriginalQuantity); err != nil {
			return err
		}
	}
	return refreshAvailability(packageRepo, locationRepo, action.OriginLocationID)
}

// applyRelocate mueve el paquete a la ubicación donde fue hallado con la
// cantidad contada, audita la salida en el origen y la entrada en el destino,
// y recalcula la disponibilidad de ambas. ResolveAction garantiza que el
// destino difiere del origen.
func (uc *CheckOrderUseCase) applyRelocate(
	packageRepo repository.PackageRepository,
	locationRepo repository.LocationRepository,
	logRepo repository.LocationLogRepository,
	order *entity.InventoryCheckOrder,
	pkg *entity.Package,
	action RelocatePackage,
) error {
	origin := pkg.LocationID
	originalQty := pkg.Quantity

	pkg.LocationID = action.ToLocationID
	pkg.Quantity = action.Quantity
	pkg.UpdatedAt = time.Now()
	if err := packageRepo.Update(pkg); err != nil {
		return err
	}

	if originalQty.IsPositive() {
		if err := uc.appendLog(logRepo, order, origin, entity.LogTypeRemove, pkg.BatchID, originalQty); err != nil {
			return err
		}
	}
	if err := uc.appendLog(logRepo, order, action.ToLocationID, entity.LogTypeAdd, pkg.BatchID, action.Quantity); err != nil {
		return err
	}

	// El destino queda ocupado por este paquete; el origen queda disponible
	// solo si ya no retiene ningún otro.
	if err := locationRepo.SetAvailable(action.ToLocationID, false); err != nil {
		return err
	}
	return refreshAvailability(packageRepo, locationRepo, origin)
}

// applyAdjust fija la cantidad contada en la misma ubicación y audita un único
// delta (add o remove). Contado == original no deja rastro de auditoría.
func (uc *CheckOrderUseCase) applyAdjust(
	packageRepo repository.PackageRepository,
	logRepo repository.LocationLogRepository,
	order *entity.InventoryCheckOrder,
	pkg *entity.Package,
	action AdjustQuantity,
) error {
	if !action.Delta.IsZero() {
		logType := entity.LogTypeAdd
		delta := action.Delta
		if delta.IsNegative() {
			logType = entity.LogTypeRemove
			delta = delta.Neg()
		}
		if err := uc.appendLog(logRepo, order, pkg.LocationID, logType, pkg.BatchID, delta); err != nil {
			return err
		}
	}
	pkg.Quantity = action.Quantity
	pkg.UpdatedAt = time.Now()
	return packageRepo.Update(pkg)
}

// appendLog crea un registro de auditoría dentro de la misma transacción que
// la mutación que lo causó: si la tx aborta, no persiste ni uno ni otro.
func (uc *CheckOrderUseCase) appendLog(
	logRepo repository.LocationLogRepository,
	order *entity.InventoryCheckOrder,
	locationID, logType, batchID string,
	quantity decimal.Decimal,
) error {
	return logRepo.Create(&entity.LogLocationChange{
		ID:         uuid.New().String(),
		LocationID: locationID,
		Type:       logType,
		BatchID:    batchID,
		Quantity:   quantity,
		OrderID:    order.ID,
		ManagerID:  order.ManagerID,
		CreatedAt:  time.Now(),
	})
}

// refreshAvailability restablece el invariante available == (sin paquetes)
// para una ubicación, contando ocupación dentro de la transacción.
func refreshAvailability(
	packageRepo repository.PackageRepository,
	locationRepo repository.LocationRepository,
	locationID string,
) error {
	if locationID == "" {
		return nil
	}
	n, err := packageRepo.CountByLocation(locationID)
	if err != nil {
		return err
	}
	return locationRepo.SetAvailable(locationID, n == 0)
}
