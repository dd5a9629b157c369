package repository

import (
	"github.com/shopspring/decimal"

	"github.com/gestionpyme/erp-api/internal/domain/entity"
)

// StockRepository acceso a existencias por bodega.
// Decrement es atómico: falla con domain.ErrInsufficientStock si la cantidad
// disponible es menor a la solicitada (guardia en el UPDATE, sin ventana de
// carrera entre lectura y escritura).
type StockRepository interface {
	GetByProductAndWarehouse(productID, warehouseID string) (*entity.ProductStock, error)
	ListByProduct(productID string) ([]*entity.ProductStock, error)
	Decrement(productID, warehouseID string, qty decimal.Decimal) error
	Increment(productID, warehouseID string, qty decimal.Decimal) error // upsert
}
