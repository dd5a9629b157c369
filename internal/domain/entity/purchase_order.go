package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseStatusPendiente = "pendiente"
	PurchaseStatusRecibida  = "recibida"
	PurchaseStatusCancelada = "cancelada"
)

// PurchaseOrder representa una orden de compra a proveedor.
type PurchaseOrder struct {
	ID          string
	WarehouseID string
	UserID      string
	ProviderID  string
	Status      string
	Notes       string
	CreatedAt   time.Time
	ReceivedAt  *time.Time
}

// PurchaseOrderItem es una línea de la orden.
type PurchaseOrderItem struct {
	ID              string
	PurchaseOrderID string
	ProductID       string
	Quantity        decimal.Decimal
	UnitCost        decimal.Decimal
}
