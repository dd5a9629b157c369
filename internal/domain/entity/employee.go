package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeDetails es la ficha laboral 1:1 de un perfil de usuario.
// Se mantiene separada de User porque el perfil lo crea auth y la ficha
// la completa RRHH después (puede no existir todavía).
type EmployeeDetails struct {
	EmployeeID string // = User.ID
	RUT        string
	Address    string
	JobTitle   string
	BaseSalary decimal.Decimal
	HireDate   *time.Time
}
