package trabajadores_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/application/trabajadores"
	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type fakeUserRepo struct{ users map[string]*entity.User }

func (f *fakeUserRepo) Create(*entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.users[id], nil }
func (f *fakeUserRepo) FindByEmail(string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) ListByWarehouse(string) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) UpdateRoles(id string, roles []string) error {
	if u, ok := f.users[id]; ok {
		u.Roles = roles
	}
	return nil
}
func (f *fakeUserRepo) UpdatePhone(id, phone string) error { return nil }

type fakeEmployeeRepo struct{ details map[string]*entity.EmployeeDetails }

func (f *fakeEmployeeRepo) GetDetails(id string) (*entity.EmployeeDetails, error) {
	return f.details[id], nil
}
func (f *fakeEmployeeRepo) UpsertDetails(d *entity.EmployeeDetails) error {
	f.details[d.EmployeeID] = d
	return nil
}

type fakePayrollRepo struct{ creadas []*entity.Payroll }

func (f *fakePayrollRepo) Create(p *entity.Payroll) error {
	for _, prev := range f.creadas {
		if prev.EmployeeID == p.EmployeeID && prev.PeriodDate.Equal(p.PeriodDate) {
			return domain.ErrDuplicate
		}
	}
	f.creadas = append(f.creadas, p)
	return nil
}
func (f *fakePayrollRepo) GetByID(string) (*entity.Payroll, error) { return nil, nil }
func (f *fakePayrollRepo) ListByEmployee(string) ([]*entity.Payroll, error) { return nil, nil }

const (
	testWarehouse = "wh-1"
	testEmployee  = "emp-1"
)

func newUseCase() (*trabajadores.TrabajadoresUseCase, *fakePayrollRepo) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		testEmployee: {
			ID: testEmployee, WarehouseID: testWarehouse,
			FullName: "José Pérez", Email: "jose@demo.cl",
			Roles: []string{entity.RoleVendedor}, Status: "active",
		},
	}}
	employees := &fakeEmployeeRepo{details: map[string]*entity.EmployeeDetails{}}
	payrolls := &fakePayrollRepo{}
	return trabajadores.NewTrabajadoresUseCase(users, employees, payrolls), payrolls
}

// ──────────────────────────────────────────────────────────────────────────────
// CreatePayroll: el total a pagar se calcula siempre en el servidor
// (base + haberes - descuentos); el cliente no puede imponerlo.
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePayroll_TotalSeRecalculaEnElServidor(t *testing.T) {
	uc, payrolls := newUseCase()

	resp, err := uc.CreatePayroll(testWarehouse, testEmployee, dto.CreatePayrollRequest{
		Period:     "2024-05",
		BaseSalary: decimal.NewFromInt(500_000),
		Bonuses: []dto.PayrollItemDTO{
			{Concept: "Bono de producción", Amount: decimal.NewFromInt(50_000)},
		},
		Deductions: []dto.PayrollItemDTO{
			{Concept: "Anticipo", Amount: decimal.NewFromInt(20_000)},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalPay.Equal(decimal.NewFromInt(530_000)),
		"total esperado 530000, obtenido %s", resp.TotalPay)
	assert.Equal(t, "2024-05", resp.Period)

	require.Len(t, payrolls.creadas, 1)
	assert.True(t, payrolls.creadas[0].TotalPay.Equal(decimal.NewFromInt(530_000)))
}

func TestCreatePayroll_PeriodoMalFormadoRechazado(t *testing.T) {
	uc, _ := newUseCase()

	casos := []string{"", "2024", "mayo 2024", "2024-13", "05-2024"}
	for _, periodo := range casos {
		_, err := uc.CreatePayroll(testWarehouse, testEmployee, dto.CreatePayrollRequest{
			Period:     periodo,
			BaseSalary: decimal.NewFromInt(500_000),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "período %q", periodo)
	}
}

func TestCreatePayroll_PeriodoRepetidoRechazado(t *testing.T) {
	uc, _ := newUseCase()
	in := dto.CreatePayrollRequest{Period: "2024-05", BaseSalary: decimal.NewFromInt(500_000)}

	_, err := uc.CreatePayroll(testWarehouse, testEmployee, in)
	require.NoError(t, err)

	_, err = uc.CreatePayroll(testWarehouse, testEmployee, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "un período se liquida una sola vez")
}

func TestCreatePayroll_SueldoBaseNegativoRechazado(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.CreatePayroll(testWarehouse, testEmployee, dto.CreatePayrollRequest{
		Period:     "2024-05",
		BaseSalary: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreatePayroll_ItemSinConceptoRechazado(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.CreatePayroll(testWarehouse, testEmployee, dto.CreatePayrollRequest{
		Period:     "2024-05",
		BaseSalary: decimal.NewFromInt(500_000),
		Bonuses:    []dto.PayrollItemDTO{{Concept: "", Amount: decimal.NewFromInt(10_000)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreatePayroll_TrabajadorDeOtraBodegaRechazado(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.CreatePayroll("otra-bodega", testEmployee, dto.CreatePayrollRequest{
		Period:     "2024-05",
		BaseSalary: decimal.NewFromInt(500_000),
	})
	assert.Error(t, err, "el scoping por bodega aplica también en RRHH")
}

// ── Roles ─────────────────────────────────────────────────────────────────────

func TestUpdateRoles_RolDesconocidoRechazado(t *testing.T) {
	uc, _ := newUseCase()

	err := uc.UpdateRoles(testWarehouse, testEmployee, []string{"superusuario"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateRoles_RolesValidosAceptados(t *testing.T) {
	uc, _ := newUseCase()

	err := uc.UpdateRoles(testWarehouse, testEmployee, []string{entity.RoleAdmin, entity.RoleBodeguero})
	assert.NoError(t, err)
}
