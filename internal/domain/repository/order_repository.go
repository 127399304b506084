package repository

import "github.com/avillareal/farmastock-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para órdenes de conteo (DIP).
type OrderRepository interface {
	Create(order *entity.InventoryCheckOrder) error
	GetByID(id string) (*entity.InventoryCheckOrder, error)
	List(status string, limit, offset int) ([]*entity.InventoryCheckOrder, error)
	UpdateStatus(id, status string) error
}
