package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de inventario. Price es precio de venta
// bruto (IVA incluido); CostPrice es el costo de compra. El stock por bodega
// vive en ProductStock.
type Product struct {
	ID            string
	WarehouseID   string
	SKU           string
	Name          string
	Description   string
	Price         decimal.Decimal
	CostPrice     decimal.Decimal
	Unit          string
	Category      string
	Barcode       string
	MinStockAlert decimal.Decimal
	Active        bool // soft-delete: false = eliminado
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
