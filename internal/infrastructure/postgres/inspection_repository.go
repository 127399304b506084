package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avillareal/farmastock-api/internal/domain"
	"github.com/avillareal/farmastock-api/internal/domain/entity"
	"github.com/avillareal/farmastock-api/internal/domain/repository"
)

var _ repository.InspectionRepository = (*InspectionRepo)(nil)

// InspectionRepo implementación de InspectionRepository sobre PostgreSQL
// (usable con pool o tx). Los ítems viven en inspection_items con constraint
// único (inspection_id, package_id).
type InspectionRepo struct {
	q Querier
}

// NewInspectionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInspectionRepository(q Querier) *InspectionRepo {
	return &InspectionRepo{q: q}
}

// Create persiste la inspección junto con sus ítems iniciales.
func (r *InspectionRepo) Create(inspection *entity.Inspection) error {
	ctx := context.Background()
	query := `
		INSERT INTO inspections (id, order_id, location_id, status, checker_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	checkerID := (*string)(nil)
	if inspection.CheckerID != "" {
		checkerID = &inspection.CheckerID
	}
	_, err := r.q.Exec(ctx, query,
		inspection.ID, inspection.OrderID, inspection.LocationID, inspection.Status,
		checkerID, inspection.Notes, inspection.CreatedAt, inspection.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inspection: %w", err)
	}
	for i := range inspection.CheckList {
		if err := r.UpsertItem(&inspection.CheckList[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene una inspección con su check list.
func (r *InspectionRepo) GetByID(id string) (*entity.Inspection, error) {
	ctx := context.Background()
	query := `
		SELECT id, order_id, location_id, status, COALESCE(checker_id, ''), notes, created_at, updated_at
		FROM inspections WHERE id = $1`
	var insp entity.Inspection
	err := r.q.QueryRow(ctx, query, id).Scan(
		&insp.ID, &insp.OrderID, &insp.LocationID, &insp.Status,
		&insp.CheckerID, &insp.Notes, &insp.CreatedAt, &insp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inspection: %w", err)
	}
	items, err := r.itemsFor(ctx, []string{insp.ID})
	if err != nil {
		return nil, err
	}
	insp.CheckList = items[insp.ID]
	return &insp, nil
}

// ListByOrder lista las inspecciones de una orden con sus check lists.
func (r *InspectionRepo) ListByOrder(orderID string) ([]*entity.Inspection, error) {
	ctx := context.Background()
	query := `
		SELECT id, order_id, location_id, status, COALESCE(checker_id, ''), notes, created_at, updated_at
		FROM inspections WHERE order_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list inspections: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inspection
	var ids []string
	for rows.Next() {
		var insp entity.Inspection
		if err := rows.Scan(&insp.ID, &insp.OrderID, &insp.LocationID, &insp.Status,
			&insp.CheckerID, &insp.Notes, &insp.CreatedAt, &insp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inspection: %w", err)
		}
		list = append(list, &insp)
		ids = append(ids, insp.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, insp := range list {
		insp.CheckList = items[insp.ID]
	}
	return list, nil
}

// itemsFor carga los check items de un conjunto de inspecciones en una sola consulta.
func (r *InspectionRepo) itemsFor(ctx context.Context, inspectionIDs []string) (map[string][]entity.CheckItem, error) {
	query := `
		SELECT id, inspection_id, package_id, expected_quantity, actual_quantity, COALESCE(classification, '')
		FROM inspection_items WHERE inspection_id = ANY($1) ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, inspectionIDs)
	if err != nil {
		return nil, fmt.Errorf("list inspection items: %w", err)
	}
	defer rows.Close()
	byInspection := make(map[string][]entity.CheckItem)
	for rows.Next() {
		var item entity.CheckItem
		if err := rows.Scan(&item.ID, &item.InspectionID, &item.PackageID,
			&item.ExpectedQuantity, &item.ActualQuantity, &item.Classification); err != nil {
			return nil, fmt.Errorf("scan inspection item: %w", err)
		}
		byInspection[item.InspectionID] = append(byInspection[item.InspectionID], item)
	}
	return byInspection, rows.Err()
}

// UpdateStatus actualiza el estado y el bodeguero que realiza el conteo.
func (r *InspectionRepo) UpdateStatus(id, status, checkerID string) error {
	query := `
		UPDATE inspections SET status = $2, checker_id = NULLIF($3, ''), updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, checkerID)
	if err != nil {
		return fmt.Errorf("update inspection status: %w", err)
	}
	return nil
}

// UpsertItem inserta o actualiza el ítem de un paquete dentro de la inspección.
func (r *InspectionRepo) UpsertItem(item *entity.CheckItem) error {
	query := `
		INSERT INTO inspection_items (id, inspection_id, package_id, expected_quantity, actual_quantity, classification, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), now())
		ON CONFLICT (inspection_id, package_id)
		DO UPDATE SET actual_quantity = EXCLUDED.actual_quantity, classification = EXCLUDED.classification`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InspectionID, item.PackageID,
		item.ExpectedQuantity, item.ActualQuantity, item.Classification,
	)
	if err != nil {
		return fmt.Errorf("upsert inspection item: %w", err)
	}
	return nil
}
