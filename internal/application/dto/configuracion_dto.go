package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanySettingsRequest identidad de la empresa (upsert).
type CompanySettingsRequest struct {
	CompanyName string `json:"company_name" validate:"required"`
	RUT         string `json:"rut"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Activity    string `json:"activity"`
	LogoURL     string `json:"logo_url"`
}

// CompanySettingsResponse identidad de la empresa.
type CompanySettingsResponse struct {
	CompanyName string `json:"company_name"`
	RUT         string `json:"rut"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Activity    string `json:"activity"`
	LogoURL     string `json:"logo_url"`
}

// ServiceRequest alta de servicio.
type ServiceRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// ServiceResponse servicio ofrecido.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
}
