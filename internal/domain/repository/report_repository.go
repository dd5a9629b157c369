package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySales total vendido en un mes (boletas y facturas; excluye cotizaciones).
type MonthlySales struct {
	Year  int
	Month time.Month
	Total decimal.Decimal
	Count int
}

// TopProduct unidades vendidas por producto.
type TopProduct struct {
	ProductName string
	Quantity    decimal.Decimal
}

// InventoryKPIs valorización del inventario a precio de venta.
type InventoryKPIs struct {
	TotalValue    decimal.Decimal
	ProductCount  int
}

// ReportRepository consultas agregadas de solo lectura para el dashboard.
type ReportRepository interface {
	GetMonthlySales(ctx context.Context, warehouseID string, since time.Time) ([]MonthlySales, error)
	GetTopProducts(ctx context.Context, warehouseID string, since time.Time, limit int) ([]TopProduct, error)
	GetInventoryKPIs(ctx context.Context, warehouseID string) (*InventoryKPIs, error)
}
