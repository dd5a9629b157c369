package repository

import "github.com/gestionpyme/erp-api/internal/domain/entity"

// PayrollRepository acceso a liquidaciones de sueldo.
type PayrollRepository interface {
	Create(p *entity.Payroll) error
	GetByID(id string) (*entity.Payroll, error)
	ListByEmployee(employeeID string) ([]*entity.Payroll, error)
}
