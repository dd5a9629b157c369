package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusCompletada = "completada"
	SaleStatusAnulada    = "anulada"
)

// ClientSnapshot es la copia del cliente guardada junto a la venta (JSONB).
// Se congela al momento de la transacción: el documento emitido debe quedar
// estable aunque el registro del cliente cambie después.
type ClientSnapshot struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Sale representa la cabecera de una venta o cotización.
// NetAmount y TaxAmount se calculan al crear (desglose IVA para facturas);
// el compositor de documentos los recalcula igualmente desde TotalAmount.
type Sale struct {
	ID                string
	WarehouseID       string
	UserID            string
	ClientID          *string // nil = venta de mostrador
	ClientSnapshot    *ClientSnapshot
	Type              string // factura, boleta, cotizacion
	ReceiptNumber     string
	QuoteNumberManual string // folio manual, solo cotizaciones
	NetAmount         decimal.Decimal
	TaxAmount         decimal.Decimal
	TotalAmount       decimal.Decimal
	Status            string
	CreatedAt         time.Time
}

// SaleItem es una línea de venta. ProductID o ServiceID según el origen;
// ProductName es snapshot del nombre al momento de vender.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   *string
	ServiceID   *string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal // bruto, IVA incluido
}
