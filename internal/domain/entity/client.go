package entity

import "time"

// Client representa un cliente del módulo CRM.
type Client struct {
	ID          string
	WarehouseID string
	Name        string
	TaxID       string // RUT chileno
	Address     string
	Phone       string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
