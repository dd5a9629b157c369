package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollItem es un haber o descuento de una liquidación (JSONB).
type PayrollItem struct {
	Concept string          `json:"concept"`
	Amount  decimal.Decimal `json:"amount"`
}

// Payroll representa una liquidación de sueldo mensual de un trabajador.
// TotalPay se guarda como referencia histórica, pero el documento impreso
// recalcula siempre el líquido desde base + bonos - descuentos.
type Payroll struct {
	ID         string
	EmployeeID string
	PeriodDate time.Time // primer día del mes del período
	BaseSalary decimal.Decimal
	Bonuses    []PayrollItem
	Deductions []PayrollItem
	TotalPay   decimal.Decimal
	CreatedAt  time.Time
}
