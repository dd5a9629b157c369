package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un proyecto.
const (
	ProjectStatusActivo     = "activo"
	ProjectStatusFinalizado = "finalizado"
)

// Project representa un proyecto/obra que reserva materiales de inventario.
// Al crearlo se descuenta el stock de sus materiales; al finalizarlo el
// stock no consumido vuelve a la bodega.
type Project struct {
	ID          string
	WarehouseID string
	ClientID    *string
	Name        string
	Description string
	Status      string
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
}

// ProjectMaterial es un material asignado al proyecto.
type ProjectMaterial struct {
	ID        string
	ProjectID string
	ProductID string
	Quantity  decimal.Decimal
}
