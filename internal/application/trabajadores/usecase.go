package trabajadores

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// TrabajadoresUseCase casos de uso de RRHH: fichas laborales, roles y
// liquidaciones de sueldo. Los trabajadores son los mismos perfiles de
// usuario de la bodega; la ficha laboral los complementa.
type TrabajadoresUseCase struct {
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
	payrollRepo  repository.PayrollRepository
}

// NewTrabajadoresUseCase construye el caso de uso de trabajadores.
func NewTrabajadoresUseCase(
	userRepo repository.UserRepository,
	employeeRepo repository.EmployeeRepository,
	payrollRepo repository.PayrollRepository,
) *TrabajadoresUseCase {
	return &TrabajadoresUseCase{userRepo: userRepo, employeeRepo: employeeRepo, payrollRepo: payrollRepo}
}

// List lista los trabajadores de la bodega con su ficha laboral (si existe).
func (uc *TrabajadoresUseCase) List(warehouseID string) ([]dto.EmployeeResponse, error) {
	users, err := uc.userRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(users))
	for _, u := range users {
		resp := dto.EmployeeResponse{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Phone:    u.Phone,
			Roles:    u.Roles,
		}
		details, err := uc.employeeRepo.GetDetails(u.ID)
		if err != nil {
			return nil, err
		}
		if details != nil {
			resp.RUT = details.RUT
			resp.Address = details.Address
			resp.JobTitle = details.JobTitle
			resp.BaseSalary = details.BaseSalary
			resp.HireDate = details.HireDate
		}
		out = append(out, resp)
	}
	return out, nil
}

// Get obtiene un trabajador de la bodega con su ficha.
func (uc *TrabajadoresUseCase) Get(warehouseID, employeeID string) (*dto.EmployeeResponse, error) {
	u, err := uc.requireWorker(warehouseID, employeeID)
	if err != nil {
		return nil, err
	}
	resp := &dto.EmployeeResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
		Roles:    u.Roles,
	}
	details, err := uc.employeeRepo.GetDetails(u.ID)
	if err != nil {
		return nil, err
	}
	if details != nil {
		resp.RUT = details.RUT
		resp.Address = details.Address
		resp.JobTitle = details.JobTitle
		resp.BaseSalary = details.BaseSalary
		resp.HireDate = details.HireDate
	}
	return resp, nil
}

// UpdateRoles reemplaza el set de roles de un trabajador. Valida que todos
// los roles existan.
func (uc *TrabajadoresUseCase) UpdateRoles(warehouseID, employeeID string, roles []string) error {
	if len(roles) == 0 {
		return domain.ErrInvalidInput
	}
	for _, r := range roles {
		if r != entity.RoleAdmin && r != entity.RoleVendedor && r != entity.RoleBodeguero {
			return domain.ErrInvalidInput
		}
	}
	if _, err := uc.requireWorker(warehouseID, employeeID); err != nil {
		return err
	}
	return uc.userRepo.UpdateRoles(employeeID, roles)
}

// UpsertDetails guarda la ficha laboral completa. El teléfono vive en el
// perfil, no en la ficha, así que se actualiza aparte.
func (uc *TrabajadoresUseCase) UpsertDetails(warehouseID, employeeID string, in dto.EmployeeDetailsRequest) error {
	u, err := uc.requireWorker(warehouseID, employeeID)
	if err != nil {
		return err
	}
	if in.BaseSalary.IsNegative() {
		return domain.ErrInvalidInput
	}
	details := &entity.EmployeeDetails{
		EmployeeID: employeeID,
		RUT:        in.RUT,
		Address:    in.Address,
		JobTitle:   in.JobTitle,
		BaseSalary: in.BaseSalary,
		HireDate:   in.HireDate,
	}
	if err := uc.employeeRepo.UpsertDetails(details); err != nil {
		return err
	}
	if in.Phone != u.Phone {
		return uc.userRepo.UpdatePhone(employeeID, in.Phone)
	}
	return nil
}

// CreatePayroll genera la liquidación de un período. El total a pagar se
// calcula siempre aquí (base + haberes - descuentos); lo que venga en la
// request no se considera.
func (uc *TrabajadoresUseCase) CreatePayroll(warehouseID, employeeID string, in dto.CreatePayrollRequest) (*dto.PayrollResponse, error) {
	if _, err := uc.requireWorker(warehouseID, employeeID); err != nil {
		return nil, err
	}
	period, err := time.Parse("2006-01", in.Period)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.BaseSalary.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	total := in.BaseSalary
	bonuses := make([]entity.PayrollItem, 0, len(in.Bonuses))
	for _, b := range in.Bonuses {
		if b.Concept == "" {
			return nil, domain.ErrInvalidInput
		}
		bonuses = append(bonuses, entity.PayrollItem{Concept: b.Concept, Amount: b.Amount})
		total = total.Add(b.Amount)
	}
	deductions := make([]entity.PayrollItem, 0, len(in.Deductions))
	for _, d := range in.Deductions {
		if d.Concept == "" {
			return nil, domain.ErrInvalidInput
		}
		deductions = append(deductions, entity.PayrollItem{Concept: d.Concept, Amount: d.Amount})
		total = total.Sub(d.Amount)
	}

	p := &entity.Payroll{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		PeriodDate: period,
		BaseSalary: in.BaseSalary,
		Bonuses:    bonuses,
		Deductions: deductions,
		TotalPay:   total,
		CreatedAt:  time.Now(),
	}
	if err := uc.payrollRepo.Create(p); err != nil {
		return nil, err
	}
	return toPayrollResponse(p), nil
}

// ListPayrolls lista las liquidaciones de un trabajador.
func (uc *TrabajadoresUseCase) ListPayrolls(warehouseID, employeeID string) ([]dto.PayrollResponse, error) {
	if _, err := uc.requireWorker(warehouseID, employeeID); err != nil {
		return nil, err
	}
	payrolls, err := uc.payrollRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		out = append(out, *toPayrollResponse(p))
	}
	return out, nil
}

// requireWorker valida que el trabajador exista y pertenezca a la bodega.
func (uc *TrabajadoresUseCase) requireWorker(warehouseID, employeeID string) (*entity.User, error) {
	u, err := uc.userRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if u.WarehouseID != warehouseID {
		return nil, domain.ErrForbidden
	}
	return u, nil
}

func toPayrollResponse(p *entity.Payroll) *dto.PayrollResponse {
	resp := &dto.PayrollResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Period:     p.PeriodDate.Format("2006-01"),
		BaseSalary: p.BaseSalary,
		TotalPay:   p.TotalPay,
		CreatedAt:  p.CreatedAt,
	}
	for _, b := range p.Bonuses {
		resp.Bonuses = append(resp.Bonuses, dto.PayrollItemDTO{Concept: b.Concept, Amount: b.Amount})
	}
	for _, d := range p.Deductions {
		resp.Deductions = append(resp.Deductions, dto.PayrollItemDTO{Concept: d.Concept, Amount: d.Amount})
	}
	return resp
}
