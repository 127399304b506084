package entity

import "time"

// Estados de una orden de conteo de inventario.
const (
	OrderStatusPending    = "pending"    // creada, aún sin iniciar
	OrderStatusProcessing = "processing" // conteo en curso
	OrderStatusCompleted  = "completed"  // reconciliación aplicada
	OrderStatusCancelled  = "cancelled"  // descartada sin aplicar
)

// InventoryCheckOrder representa una campaña de conteo físico de inventario.
// La crea un supervisor y la ejecuta el bodeguero asignado; pasa a completed
// únicamente a través de la reconciliación.
type InventoryCheckOrder struct {
	ID        string
	ManagerID string // bodeguero asignado, responsable de los conteos
	CreatedBy string // supervisor que creó la orden
	Status    string
	CheckDate time.Time // fecha programada del conteo
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Terminal indica si la orden ya no admite transiciones (completed o cancelled).
func (o *InventoryCheckOrder) Terminal() bool {
	return o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled
}
