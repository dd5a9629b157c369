package repository

import "github.com/gestionpyme/erp-api/internal/domain/entity"

// ProductRepository acceso a productos de inventario.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByWarehouseAndSKU(warehouseID, sku string) (*entity.Product, error)
	ListActiveByWarehouse(warehouseID string, limit, offset int) ([]*entity.Product, error)
	Update(p *entity.Product) error
	Deactivate(id string) error // soft-delete
}
