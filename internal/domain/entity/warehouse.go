package entity

import "time"

// Warehouse representa una bodega/sucursal. Es la unidad de aislamiento
// multi-tenant: todos los datos operativos se scopean por warehouse_id.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	IsMain    bool
	Active    bool
	CreatedAt time.Time
}
