package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CountItemRequest cantidad contada físicamente para un paquete.
type CountItemRequest struct {
	PackageID      string          `json:"package_id"`
	ActualQuantity decimal.Decimal `json:"actual_quantity"`
}

// SubmitCountsRequest body para PUT /api/inspections/{id}/items.
type SubmitCountsRequest struct {
	Items []CountItemRequest `json:"items"`
	Notes string             `json:"notes,omitempty"`
}

// UpdateInspectionStatusRequest body para PUT /api/inspections/{id}/status.
type UpdateInspectionStatusRequest struct {
	Status string `json:"status"`
}

// CheckItemResponse línea del check list de una inspección.
type CheckItemResponse struct {
	ID               string          `json:"id"`
	PackageID        string          `json:"package_id"`
	ExpectedQuantity decimal.Decimal `json:"expected_quantity"`
	ActualQuantity   decimal.Decimal `json:"actual_quantity"`
	Classification   string          `json:"classification,omitempty"`
}

// InspectionResponse representación de una inspección con su check list.
type InspectionResponse struct {
	ID         string              `json:"id"`
	OrderID    string              `json:"order_id"`
	LocationID string              `json:"location_id"`
	Status     string              `json:"status"`
	CheckerID  string              `json:"checker_id,omitempty"`
	Notes      string              `json:"notes,omitempty"`
	CheckList  []CheckItemResponse `json:"check_list"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}
