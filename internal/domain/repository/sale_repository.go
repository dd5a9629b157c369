package repository

import "github.com/gestionpyme/erp-api/internal/domain/entity"

// SaleRepository acceso a ventas y cotizaciones.
type SaleRepository interface {
	Create(s *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Sale, error)
	ListByClient(clientID string) ([]*entity.Sale, error)
	DeleteItemsBySaleID(saleID string) error
	Delete(id string) error
	// NextReceiptNumber devuelve el siguiente folio correlativo de la bodega,
	// con padding a 6 dígitos (000001, 000002, ...).
	NextReceiptNumber(warehouseID string) (string, error)
}
