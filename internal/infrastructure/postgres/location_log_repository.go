package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avillareal/farmastock-api/internal/domain/entity"
	"github.com/avillareal/farmastock-api/internal/domain/repository"
)

var _ repository.LocationLogRepository = (*LocationLogRepo)(nil)

// LocationLogRepo implementación de LocationLogRepository sobre PostgreSQL
// (usable con pool o tx). Append-only: este adaptador no expone UPDATE ni
// DELETE sobre location_change_logs.
type LocationLogRepo struct {
	q Querier
}

// NewLocationLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationLogRepository(q Querier) *LocationLogRepo {
	return &LocationLogRepo{q: q}
}

// Create persiste un registro de auditoría de cambio de ubicación.
func (r *LocationLogRepo) Create(log *entity.LogLocationChange) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO location_change_logs (id, location_id, type, batch_id, quantity, order_id, manager_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.LocationID, log.Type, log.BatchID, log.Quantity,
		log.OrderID, log.ManagerID, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create location change log: %w", err)
	}
	return nil
}

// ListByLocation lista la auditoría de una ubicación, más reciente primero.
func (r *LocationLogRepo) ListByLocation(locationID string, limit, offset int) ([]*entity.LogLocationChange, error) {
	query := `
		SELECT id, location_id, type, batch_id, quantity, order_id, manager_id, created_at
		FROM location_change_logs
		WHERE location_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list location change logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.LogLocationChange
	for rows.Next() {
		var l entity.LogLocationChange
		if err := rows.Scan(&l.ID, &l.LocationID, &l.Type, &l.BatchID, &l.Quantity,
			&l.OrderID, &l.ManagerID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location change log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
