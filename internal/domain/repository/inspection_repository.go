package repository

import "github.com/avillareal/farmastock-api/internal/domain/entity"

// InspectionRepository define el puerto de persistencia para inspecciones y
// sus ítems de conteo. ListByOrder y GetByID devuelven el check list completo.
type InspectionRepository interface {
	// Create persiste la inspección junto con sus ítems iniciales.
	// Retorna domain.ErrDuplicate si ya existe una para (orden, ubicación).
	Create(inspection *entity.Inspection) error
	GetByID(id string) (*entity.Inspection, error)
	ListByOrder(orderID string) ([]*entity.Inspection, error)
	UpdateStatus(id, status, checkerID string) error
	// UpsertItem inserta o actualiza el ítem de un paquete dentro de una
	// inspección (máximo uno por paquete por inspección).
	UpsertItem(item *entity.CheckItem) error
}
