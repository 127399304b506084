package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avillareal/farmastock-api/internal/domain/entity"
	"github.com/avillareal/farmastock-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación de BatchRepository sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// GetByID obtiene un lote por ID.
func (r *BatchRepo) GetByID(id string) (*entity.MedicineBatch, error) {
	query := `SELECT id, medicine_name, batch_code, expiry_date, created_at FROM medicine_batches WHERE id = $1`
	var b entity.MedicineBatch
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.MedicineName, &b.BatchCode, &b.ExpiryDate, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicine batch: %w", err)
	}
	return &b, nil
}
