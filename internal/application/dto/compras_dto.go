package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProviderRequest alta de proveedor.
type ProviderRequest struct {
	Name    string `json:"name" validate:"required"`
	RUT     string `json:"rut"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ProviderResponse proveedor.
type ProviderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RUT       string    `json:"rut"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// PurchaseItemRequest línea de una orden de compra.
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest alta de orden de compra.
type CreatePurchaseOrderRequest struct {
	ProviderID string                `json:"provider_id" validate:"required"`
	Notes      string                `json:"notes"`
	Items      []PurchaseItemRequest `json:"items" validate:"required,min=1"`
}

// PurchaseItemResponse línea persistida.
type PurchaseItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// PurchaseOrderResponse orden con sus líneas.
type PurchaseOrderResponse struct {
	ID           string                 `json:"id"`
	ProviderID   string                 `json:"provider_id"`
	ProviderName string                 `json:"provider_name,omitempty"`
	Status       string                 `json:"status"`
	Notes        string                 `json:"notes,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	ReceivedAt   *time.Time             `json:"received_at,omitempty"`
	Items        []PurchaseItemResponse `json:"items,omitempty"`
}
