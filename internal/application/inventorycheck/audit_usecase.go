package inventorycheck

import (
	"github.com/avillareal/farmastock-api/internal/application/dto"
	"github.com/avillareal/farmastock-api/internal/domain"
	"github.com/avillareal/farmastock-api/internal/domain/repository"
)

// AuditUseCase lectura del rastro de auditoría de cambios de ubicación.
type AuditUseCase struct {
	locationRepo repository.LocationRepository
	logRepo      repository.LocationLogRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(locationRepo repository.LocationRepository, logRepo repository.LocationLogRepository) *AuditUseCase {
	return &AuditUseCase{locationRepo: locationRepo, logRepo: logRepo}
}

// LocationLogs lista los registros de auditoría de una ubicación, del más
// reciente al más antiguo.
func (uc *AuditUseCase) LocationLogs(locationID string, limit, offset int) (*dto.LocationLogListResponse, error) {
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	logs, err := uc.logRepo.ListByLocation(locationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, dto.LocationLogResponse{
			ID:         l.ID,
			LocationID: l.LocationID,
			Type:       l.Type,
			BatchID:    l.BatchID,
			Quantity:   l.Quantity,
			OrderID:    l.OrderID,
			ManagerID:  l.ManagerID,
			CreatedAt:  l.CreatedAt,
		})
	}
	return &dto.LocationLogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
