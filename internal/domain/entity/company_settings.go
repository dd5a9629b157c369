package entity

import "time"

// CompanySettings es la identidad de la empresa por bodega: el bloque de
// emisor que se imprime en boletas, facturas, cotizaciones y liquidaciones.
type CompanySettings struct {
	ID          string
	WarehouseID string
	CompanyName string
	RUT         string
	Address     string
	Phone       string
	Email       string
	Activity    string // giro comercial
	LogoURL     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
