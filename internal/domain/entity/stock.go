package entity

import "github.com/shopspring/decimal"

// ProductStock es la existencia de un producto en una bodega.
type ProductStock struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
}
