package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	SKU           string          `json:"sku" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	Unit          string          `json:"unit"`
	Category      string          `json:"category"`
	Barcode       string          `json:"barcode"`
	MinStockAlert decimal.Decimal `json:"min_stock_alert"`
}

// UpdateProductRequest actualización parcial de producto.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	Unit          *string          `json:"unit"`
	Category      *string          `json:"category"`
	Barcode       *string          `json:"barcode"`
	MinStockAlert *decimal.Decimal `json:"min_stock_alert"`
}

// StockByWarehouse existencias de un producto en una bodega.
type StockByWarehouse struct {
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// ProductResponse producto con stock total agregado.
type ProductResponse struct {
	ID            string             `json:"id"`
	WarehouseID   string             `json:"warehouse_id"`
	SKU           string             `json:"sku"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Price         decimal.Decimal    `json:"price"`
	CostPrice     decimal.Decimal    `json:"cost_price"`
	Unit          string             `json:"unit"`
	Category      string             `json:"category"`
	Barcode       string             `json:"barcode"`
	MinStockAlert decimal.Decimal    `json:"min_stock_alert"`
	TotalStock    decimal.Decimal    `json:"total_stock"`
	Stocks        []StockByWarehouse `json:"stocks,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ProductListResponse listado paginado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// WarehouseResponse bodega.
type WarehouseResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	IsMain  bool   `json:"is_main"`
}
