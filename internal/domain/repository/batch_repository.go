package repository

import "github.com/avillareal/farmastock-api/internal/domain/entity"

// BatchRepository define el puerto de lectura de lotes de medicamento.
type BatchRepository interface {
	GetByID(id string) (*entity.MedicineBatch, error)
}
