package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea del carrito. ProductID o ServiceID, no ambos.
type SaleItemRequest struct {
	ProductID *string         `json:"product_id"`
	ServiceID *string         `json:"service_id"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// CreateSaleRequest checkout de una venta o cotización.
type CreateSaleRequest struct {
	Type              string            `json:"type" validate:"required"` // factura, boleta, cotizacion
	ClientID          *string           `json:"client_id"`                // obligatorio para factura
	QuoteNumberManual string            `json:"quote_number_manual"`      // folio manual, solo cotizaciones
	Items             []SaleItemRequest `json:"items" validate:"required,min=1"`
}

// SaleItemResponse línea de venta persistida.
type SaleItemResponse struct {
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// SaleResponse cabecera de venta con sus líneas.
type SaleResponse struct {
	ID                string             `json:"id"`
	Type              string             `json:"type"`
	ReceiptNumber     string             `json:"receipt_number"`
	QuoteNumberManual string             `json:"quote_number_manual,omitempty"`
	ClientName        string             `json:"client_name,omitempty"`
	NetAmount         decimal.Decimal    `json:"net_amount"`
	TaxAmount         decimal.Decimal    `json:"tax_amount"`
	TotalAmount       decimal.Decimal    `json:"total_amount"`
	Status            string             `json:"status"`
	CreatedAt         time.Time          `json:"created_at"`
	Items             []SaleItemResponse `json:"items,omitempty"`
}

// SaleListResponse historial de ventas y cotizaciones (registros).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
