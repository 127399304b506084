package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avillareal/farmastock-api/internal/domain/entity"
	"github.com/avillareal/farmastock-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una nueva orden de conteo.
func (r *OrderRepo) Create(order *entity.InventoryCheckOrder) error {
	query := `
		INSERT INTO inventory_check_orders (id, manager_id, created_by, status, check_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ManagerID, order.CreatedBy, order.Status,
		order.CheckDate, order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert check order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.InventoryCheckOrder, error) {
	query := `
		SELECT id, manager_id, created_by, status, check_date, notes, created_at, updated_at
		FROM inventory_check_orders WHERE id = $1`
	var o entity.InventoryCheckOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ManagerID, &o.CreatedBy, &o.Status, &o.CheckDate, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get check order: %w", err)
	}
	return &o, nil
}

// List lista órdenes con paginación; status vacío lista todas.
func (r *OrderRepo) List(status string, limit, offset int) ([]*entity.InventoryCheckOrder, error) {
	query := `
		SELECT id, manager_id, created_by, status, check_date, notes, created_at, updated_at
		FROM inventory_check_orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list check orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryCheckOrder
	for rows.Next() {
		var o entity.InventoryCheckOrder
		if err := rows.Scan(&o.ID, &o.ManagerID, &o.CreatedBy, &o.Status, &o.CheckDate, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan check order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus actualiza el estado de la orden.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	query := `UPDATE inventory_check_orders SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update check order status: %w", err)
	}
	return nil
}
