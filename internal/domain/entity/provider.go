package entity

import "time"

// Provider representa un proveedor del módulo de compras.
type Provider struct {
	ID          string
	WarehouseID string
	Name        string
	RUT         string
	Phone       string
	Email       string
	Address     string
	CreatedAt   time.Time
}
