package entity

import "time"

// MedicineBatch representa un lote de medicamento (referencia de los paquetes
// y de los registros de auditoría de ubicación).
type MedicineBatch struct {
	ID           string
	MedicineName string
	BatchCode    string
	ExpiryDate   time.Time
	CreatedAt    time.Time
}
