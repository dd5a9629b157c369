package repository

import "github.com/gestionpyme/erp-api/internal/domain/entity"

// WarehouseRepository acceso a bodegas.
type WarehouseRepository interface {
	Create(w *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	ListActive() ([]*entity.Warehouse, error)
}
