package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
// La ficha es 1:1 con el perfil de usuario y puede no existir todavía;
// ese caso se devuelve como nil sin error.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// GetDetails obtiene la ficha laboral de un trabajador; nil si no existe.
func (r *EmployeeRepo) GetDetails(employeeID string) (*entity.EmployeeDetails, error) {
	query := `
		SELECT employee_id, COALESCE(rut, ''), COALESCE(address, ''), COALESCE(job_title, ''),
		       base_salary, hire_date
		FROM employee_details WHERE employee_id = $1`
	var d entity.EmployeeDetails
	err := r.q.QueryRow(context.Background(), query, employeeID).Scan(
		&d.EmployeeID, &d.RUT, &d.Address, &d.JobTitle, &d.BaseSalary, &d.HireDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee details: %w", err)
	}
	return &d, nil
}

// UpsertDetails inserta o reemplaza la ficha laboral completa.
func (r *EmployeeRepo) UpsertDetails(d *entity.EmployeeDetails) error {
	query := `
		INSERT INTO employee_details (employee_id, rut, address, job_title, base_salary, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id) DO UPDATE SET
			rut = EXCLUDED.rut,
			address = EXCLUDED.address,
			job_title = EXCLUDED.job_title,
			base_salary = EXCLUDED.base_salary,
			hire_date = EXCLUDED.hire_date`
	_, err := r.q.Exec(context.Background(), query,
		d.EmployeeID, nullIfEmpty(d.RUT), nullIfEmpty(d.Address), nullIfEmpty(d.JobTitle),
		d.BaseSalary, d.HireDate,
	)
	if err != nil {
		return fmt.Errorf("upsert employee details: %w", err)
	}
	return nil
}
