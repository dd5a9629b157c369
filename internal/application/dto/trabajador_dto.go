package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeDetailsRequest ficha laboral (upsert).
type EmployeeDetailsRequest struct {
	RUT        string          `json:"rut"`
	Address    string          `json:"address"`
	JobTitle   string          `json:"job_title"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	HireDate   *time.Time      `json:"hire_date"`
	Phone      string          `json:"phone"` // vive en el perfil, no en la ficha
}

// EmployeeResponse perfil + ficha laboral normalizada a un único registro.
type EmployeeResponse struct {
	ID         string           `json:"id"`
	FullName   string           `json:"full_name"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Roles      []string         `json:"roles"`
	RUT        string           `json:"rut,omitempty"`
	Address    string           `json:"address,omitempty"`
	JobTitle   string           `json:"job_title,omitempty"`
	BaseSalary decimal.Decimal  `json:"base_salary"`
	HireDate   *time.Time       `json:"hire_date,omitempty"`
}

// PayrollItemDTO haber o descuento.
type PayrollItemDTO struct {
	Concept string          `json:"concept" validate:"required"`
	Amount  decimal.Decimal `json:"amount" validate:"required"`
}

// CreatePayrollRequest generación de liquidación.
type CreatePayrollRequest struct {
	Period     string           `json:"period" validate:"required"` // YYYY-MM
	BaseSalary decimal.Decimal  `json:"base_salary"`
	Bonuses    []PayrollItemDTO `json:"bonuses"`
	Deductions []PayrollItemDTO `json:"deductions"`
}

// PayrollResponse liquidación persistida.
type PayrollResponse struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employee_id"`
	Period     string           `json:"period"` // YYYY-MM
	BaseSalary decimal.Decimal  `json:"base_salary"`
	Bonuses    []PayrollItemDTO `json:"bonuses"`
	Deductions []PayrollItemDTO `json:"deductions"`
	TotalPay   decimal.Decimal  `json:"total_pay"`
	CreatedAt  time.Time        `json:"created_at"`
}
