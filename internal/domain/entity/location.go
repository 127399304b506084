package entity

import "time"

// Location es una posición física de almacenamiento.
// Invariante mantenido por la reconciliación: Available es true si y solo si
// ningún paquete referencia la ubicación.
type Location struct {
	ID        string
	Code      string // código legible de la posición (p. ej. A-03-12)
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
