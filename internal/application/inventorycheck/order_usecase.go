package inventorycheck

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avillareal/farmastock-api/internal/application/dto"
	"github.com/avillareal/farmastock-api/internal/domain"
	"github.com/avillareal/farmastock-api/internal/domain/entity"
	"github.com/avillareal/farmastock-api/internal/domain/repository"
)

// CheckOrderUseCase casos de uso de órdenes de conteo: creación con siembra de
// inspecciones, listados, transiciones de estado y la reconciliación que lleva
// la orden a completed.
type CheckOrderUseCase struct {
	txRunner       TxRunner
	orderRepo      repository.OrderRepository
	inspectionRepo repository.InspectionRepository
}

// NewCheckOrderUseCase construye el caso de uso.
func NewCheckOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	inspectionRepo repository.InspectionRepository,
) *CheckOrderUseCase {
	return &CheckOrderUseCase{
		txRunner:       txRunner,
		orderRepo:      orderRepo,
		inspectionRepo: inspectionRepo,
	}
}

// CreateOrder crea la orden y siembra, en la misma transacción, una inspección
// draft por cada ubicación ocupada, con un ítem por paquete (esperado = cantidad
// actual del paquete, contado en cero hasta el conteo físico).
func (uc *CheckOrderUseCase) CreateOrder(ctx context.Context, createdBy string, in dto.CreateCheckOrderRequest) (*dto.CheckOrderResponse, error) {
	if in.ManagerID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	order := &entity.InventoryCheckOrder{
		ID:        uuid.New().String(),
		ManagerID: in.ManagerID,
		CreatedBy: createdBy,
		Status:    entity.OrderStatusPending,
		CheckDate: in.CheckDate,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		inspectionRepo repository.InspectionRepository,
		packageRepo repository.PackageRepository,
		_ repository.LocationRepository,
		_ repository.LocationLogRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		packages, err := packageRepo.ListAll()
		if err != nil {
			return err
		}
		byLocation := make(map[string][]*entity.Package)
		var locations []string
		for _, pkg := range packages {
			if _, seen := byLocation[pkg.LocationID]; !seen {
				locations = append(locations, pkg.LocationID)
			}
			byLocation[pkg.LocationID] = append(byLocation[pkg.LocationID], pkg)
		}
		for _, locationID := range locations {
			inspection := &entity.Inspection{
				ID:         uuid.New().String(),
				OrderID:    order.ID,
				LocationID: locationID,
				Status:     entity.InspectionStatusDraft,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			for _, pkg := range byLocation[locationID] {
				inspection.CheckList = append(inspection.CheckList, entity.CheckItem{
					ID:               uuid.New().String(),
					InspectionID:     inspection.ID,
					PackageID:        pkg.ID,
					ExpectedQuantity: pkg.Quantity,
					ActualQuantity:   decimal.Zero,
				})
			}
			if err := inspectionRepo.Create(inspection); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCheckOrderResponse(order), nil
}

// GetByID obtiene la orden con sus inspecciones.
func (uc *CheckOrderUseCase) GetByID(id string) (*dto.CheckOrderDetailResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	inspections, err := uc.inspectionRepo.ListByOrder(id)
	if err != nil {
		return nil, err
	}
	detail := &dto.CheckOrderDetailResponse{Order: *toCheckOrderResponse(order)}
	for _, insp := range inspections {
		detail.Inspections = append(detail.Inspections, *toInspectionResponse(insp))
	}
	return detail, nil
}

// List lista órdenes, opcionalmente filtradas por estado, con paginación.
func (uc *CheckOrderUseCase) List(status string, limit, offset int) (*dto.CheckOrderListResponse, error) {
	list, err := uc.orderRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CheckOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toCheckOrderResponse(o))
	}
	return &dto.CheckOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus aplica una transición de estado sobre la orden.
// completed dispara la compuerta de completitud y la reconciliación (§ reconcile.go);
// processing y cancelled son transiciones simples validadas aquí.
func (uc *CheckOrderUseCase) UpdateStatus(ctx context.Context, orderID, target string) (*dto.CheckOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Terminal() {
		return nil, domain.ErrConflict
	}

	switch target {
	case entity.OrderStatusCompleted:
		if err := uc.CompleteOrder(ctx, order); err != nil {
			return nil, err
		}
	case entity.OrderStatusProcessing:
		if order.Status != entity.OrderStatusPending {
			return nil, domain.ErrConflict
		}
		if err := uc.orderRepo.UpdateStatus(orderID, target); err != nil {
			return nil, err
		}
	case entity.OrderStatusCancelled:
		if err := uc.orderRepo.UpdateStatus(orderID, target); err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	order, err = uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	return toCheckOrderResponse(order), nil
}

// CompleteOrder es la compuerta de completitud más la reconciliación.
// Verifica que la orden tenga al menos una inspección y que todas estén en
// checked; si quedan pendientes retorna IncompleteInspectionsError con el
// conteo y la reconciliación nunca inicia.
func (uc *CheckOrderUseCase) CompleteOrder(ctx context.Context, order *entity.InventoryCheckOrder) error {
	inspections, err := uc.inspectionRepo.ListByOrder(order.ID)
	if err != nil {
		return err
	}
	if len(inspections) == 0 {
		return domain.ErrNoInspections
	}
	remaining := 0
	for _, insp := range inspections {
		if insp.Status != entity.InspectionStatusChecked {
			remaining++
		}
	}
	if remaining > 0 {
		return &domain.IncompleteInspectionsError{Remaining: remaining}
	}

	decisions, err := BuildDecisions(inspections)
	if err != nil {
		return err
	}
	return uc.reconcile(ctx, order, decisions)
}

func toCheckOrderResponse(o *entity.InventoryCheckOrder) *dto.CheckOrderResponse {
	if o == nil {
		return nil
	}
	return &dto.CheckOrderResponse{
		ID:        o.ID,
		ManagerID: o.ManagerID,
		CreatedBy: o.CreatedBy,
		Status:    o.Status,
		CheckDate: o.CheckDate,
		Notes:     o.Notes,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toInspectionResponse(i *entity.Inspection) *dto.InspectionResponse {
	if i == nil {
		return nil
	}
	resp := &dto.InspectionResponse{
		ID:         i.ID,
		OrderID:    i.OrderID,
		LocationID: i.LocationID,
		Status:     i.Status,
		CheckerID:  i.CheckerID,
		Notes:      i.Notes,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
	for _, item := range i.CheckList {
		resp.CheckList = append(resp.CheckList, dto.CheckItemResponse{
			ID:               item.ID,
			PackageID:        item.PackageID,
			ExpectedQuantity: item.ExpectedQuantity,
			ActualQuantity:   item.ActualQuantity,
			Classification:   item.Classification,
		})
	}
	return resp
}
