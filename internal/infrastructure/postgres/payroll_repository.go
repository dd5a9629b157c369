package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

var _ repository.PayrollRepository = (*PayrollRepo)(nil)

// PayrollRepo implementación de PayrollRepository (usable con pool o tx).
// Haberes y descuentos se guardan como arreglos JSONB de {concept, amount}.
type PayrollRepo struct {
	q Querier
}

// NewPayrollRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPayrollRepository(q Querier) *PayrollRepo {
	return &PayrollRepo{q: q}
}

// Create persiste una liquidación. Constraint único sobre (employee_id,
// period_date): una liquidación por trabajador por mes.
func (r *PayrollRepo) Create(p *entity.Payroll) error {
	bonuses, err := json.Marshal(p.Bonuses)
	if err != nil {
		return fmt.Errorf("marshal bonuses: %w", err)
	}
	deductions, err := json.Marshal(p.Deductions)
	if err != nil {
		return fmt.Errorf("marshal deductions: %w", err)
	}
	query := `
		INSERT INTO payrolls (id, employee_id, period_date, base_salary, bonuses, deductions, total_pay, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, p.EmployeeID, p.PeriodDate, p.BaseSalary, bonuses, deductions, p.TotalPay, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payroll: %w", err)
	}
	return nil
}

func scanPayroll(row pgx.Row) (*entity.Payroll, error) {
	var p entity.Payroll
	var bonuses, deductions []byte
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PeriodDate, &p.BaseSalary, &bonuses, &deductions, &p.TotalPay, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(bonuses) > 0 {
		if err := json.Unmarshal(bonuses, &p.Bonuses); err != nil {
			return nil, fmt.Errorf("unmarshal bonuses: %w", err)
		}
	}
	if len(deductions) > 0 {
		if err := json.Unmarshal(deductions, &p.Deductions); err != nil {
			return nil, fmt.Errorf("unmarshal deductions: %w", err)
		}
	}
	return &p, nil
}

// GetByID obtiene una liquidación por ID.
func (r *PayrollRepo) GetByID(id string) (*entity.Payroll, error) {
	query := `
		SELECT id, employee_id, period_date, base_salary, bonuses, deductions, total_pay, created_at
		FROM payrolls WHERE id = $1`
	p, err := scanPayroll(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payroll: %w", err)
	}
	return p, nil
}

// ListByEmployee lista las liquidaciones de un trabajador, período más reciente primero.
func (r *PayrollRepo) ListByEmployee(employeeID string) ([]*entity.Payroll, error) {
	query := `
		SELECT id, employee_id, period_date, base_salary, bonuses, deductions, total_pay, created_at
		FROM payrolls WHERE employee_id = $1 ORDER BY period_date DESC`
	rows, err := r.q.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list payrolls: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payroll: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
