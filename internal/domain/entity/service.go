package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service representa un servicio ofrecido (mano de obra, instalación, etc.).
// Se vende igual que un producto pero no descuenta stock.
type Service struct {
	ID          string
	WarehouseID string
	Name        string
	Description string
	Price       decimal.Decimal
	Active      bool
	CreatedAt   time.Time
}
