package repository

import "github.com/avillareal/farmastock-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para ubicaciones.
type LocationRepository interface {
	GetByID(id string) (*entity.Location, error)
	SetAvailable(id string, available bool) error
}
