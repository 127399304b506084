package repository

import "github.com/avillareal/farmastock-api/internal/domain/entity"

// PackageRepository define el puerto para consultar y mutar paquetes.
// GetForUpdate se usa dentro de transacciones para garantizar consistencia.
type PackageRepository interface {
	GetByID(id string) (*entity.Package, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Package, error)
	ListAll() ([]*entity.Package, error)
	ListByLocation(locationID string) ([]*entity.Package, error)
	CountByLocation(locationID string) (int, error)
	Update(pkg *entity.Package) error
	Delete(id string) error
}
