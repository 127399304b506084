package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCheckOrderRequest body para POST /api/inventory-checks.
type CreateCheckOrderRequest struct {
	ManagerID string    `json:"manager_id"`
	CheckDate time.Time `json:"check_date"`
	Notes     string    `json:"notes,omitempty"`
}

// UpdateOrderStatusRequest body para PUT /api/inventory-checks/{id}/status.
// Status completed dispara la reconciliación.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CheckOrderResponse representación de una orden de conteo.
type CheckOrderResponse struct {
	ID        string    `json:"id"`
	ManagerID string    `json:"manager_id"`
	CreatedBy string    `json:"created_by"`
	Status    string    `json:"status"`
	CheckDate time.Time `json:"check_date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckOrderListResponse listado paginado de órdenes.
type CheckOrderListResponse struct {
	Items []CheckOrderResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// CheckOrderDetailResponse orden con sus inspecciones.
type CheckOrderDetailResponse struct {
	Order       CheckOrderResponse   `json:"order"`
	Inspections []InspectionResponse `json:"inspections"`
}

// LocationLogResponse un registro de auditoría de cambio de ubicación.
type LocationLogResponse struct {
	ID         string          `json:"id"`
	LocationID string          `json:"location_id"`
	Type       string          `json:"type"`
	BatchID    string          `json:"batch_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	OrderID    string          `json:"order_id"`
	ManagerID  string          `json:"manager_id"`
	CreatedAt  time.Time       `json:"created_at"`
}

// LocationLogListResponse listado paginado de auditoría.
type LocationLogListResponse struct {
	Items []LocationLogResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
