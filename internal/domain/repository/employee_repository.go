package repository

import "github.com/gestionpyme/erp-api/internal/domain/entity"

// EmployeeRepository acceso a fichas laborales.
// GetDetails devuelve nil (sin error) si la ficha aún no existe: el borde de
// persistencia normaliza siempre a un único registro canónico, a diferencia
// del backend anterior que devolvía objeto o arreglo según la consulta.
type EmployeeRepository interface {
	GetDetails(employeeID string) (*entity.EmployeeDetails, error)
	UpsertDetails(d *entity.EmployeeDetails) error
}
