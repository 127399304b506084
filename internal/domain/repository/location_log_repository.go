package repository

import "github.com/avillareal/farmastock-api/internal/domain/entity"

// LocationLogRepository define el puerto para la auditoría de cambios de
// ubicación. Solo inserta y lista: los registros son inmutables por diseño
// del dominio, no existe Update ni Delete.
type LocationLogRepository interface {
	Create(log *entity.LogLocationChange) error
	ListByLocation(locationID string, limit, offset int) ([]*entity.LogLocationChange, error)
}
