package repository

import "github.com/gestionpyme/erp-api/internal/domain/entity"

// ProviderRepository acceso a proveedores.
type ProviderRepository interface {
	Create(p *entity.Provider) error
	GetByID(id string) (*entity.Provider, error)
	ListByWarehouse(warehouseID string) ([]*entity.Provider, error)
	Delete(id string) error
}
