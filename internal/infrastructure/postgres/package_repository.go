package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avillareal/farmastock-api/internal/domain/entity"
	"github.com/avillareal/farmastock-api/internal/domain/repository"
)

var _ repository.PackageRepository = (*PackageRepo)(nil)

// PackageRepo implementación de PackageRepository sobre PostgreSQL (usable con pool o tx).
type PackageRepo struct {
	q Querier
}

// NewPackageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPackageRepository(q Querier) *PackageRepo {
	return &PackageRepo{q: q}
}

const packageColumns = `id, batch_id, location_id, quantity, created_at, updated_at`

func scanPackage(row pgx.Row) (*entity.Package, error) {
	var p entity.Package
	err := row.Scan(&p.ID, &p.BatchID, &p.LocationID, &p.Quantity, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetByID obtiene un paquete por ID.
func (r *PackageRepo) GetByID(id string) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`
	pkg, err := scanPackage(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}
	return pkg, nil
}

// GetForUpdate obtiene el paquete y bloquea la fila (SELECT FOR UPDATE).
func (r *PackageRepo) GetForUpdate(id string) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1 FOR UPDATE`
	pkg, err := scanPackage(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get package for update: %w", err)
	}
	return pkg, nil
}

// ListAll lista todos los paquetes del almacén.
func (r *PackageRepo) ListAll() ([]*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages ORDER BY location_id, created_at`
	return r.queryPackages(query)
}

// ListByLocation lista los paquetes de una ubicación.
func (r *PackageRepo) ListByLocation(locationID string) ([]*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE location_id = $1 ORDER BY created_at`
	return r.queryPackages(query, locationID)
}

func (r *PackageRepo) queryPackages(query string, args ...any) ([]*entity.Package, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Package
	for rows.Next() {
		var p entity.Package
		if err := rows.Scan(&p.ID, &p.BatchID, &p.LocationID, &p.Quantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountByLocation cuenta paquetes que referencian una ubicación.
func (r *PackageRepo) CountByLocation(locationID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM packages WHERE location_id = $1`, locationID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count packages by location: %w", err)
	}
	return n, nil
}

// Update persiste cantidad y ubicación del paquete.
func (r *PackageRepo) Update(pkg *entity.Package) error {
	query := `
		UPDATE packages SET location_id = $2, quantity = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, pkg.ID, pkg.LocationID, pkg.Quantity, pkg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update package: %w", err)
	}
	return nil
}

// Delete elimina un paquete por ID.
func (r *PackageRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	return nil
}
