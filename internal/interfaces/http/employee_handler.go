package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestionpyme/erp-api/internal/application/documentos"
	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/application/trabajadores"
)

// EmployeeHandler maneja RRHH: trabajadores, roles, fichas y liquidaciones (protegido).
type EmployeeHandler struct {
	uc    *trabajadores.TrabajadoresUseCase
	pdfUC *documentos.PDFUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *trabajadores.TrabajadoresUseCase, pdfUC *documentos.PDFUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, pdfUC: pdfUC}
}

// List lista los trabajadores con su ficha laboral.
// GET /api/employees
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	employees, err := h.uc.List(GetWarehouseID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(employees)
}

// GetByID obtiene un trabajador con su ficha.
// GET /api/employees/:id
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	employee, err := h.uc.Get(GetWarehouseID(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(employee)
}

// rolesRequest set completo de roles a asignar.
type rolesRequest struct {
	Roles []string `json:"roles"`
}

// UpdateRoles reemplaza los roles del trabajador.
// PUT /api/employees/:id/roles
func (h *EmployeeHandler) UpdateRoles(c *fiber.Ctx) error {
	var in rolesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateRoles(GetWarehouseID(c), c.Params("id"), in.Roles); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpsertDetails guarda la ficha laboral del trabajador.
// PUT /api/employees/:id/details
func (h *EmployeeHandler) UpsertDetails(c *fiber.Ctx) error {
	var in dto.EmployeeDetailsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpsertDetails(GetWarehouseID(c), c.Params("id"), in); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePayroll genera la liquidación de un período.
// POST /api/employees/:id/payrolls
func (h *EmployeeHandler) CreatePayroll(c *fiber.Ctx) error {
	var in dto.CreatePayrollRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	payroll, err := h.uc.CreatePayroll(GetWarehouseID(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payroll)
}

// ListPayrolls lista las liquidaciones de un trabajador.
// GET /api/employees/:id/payrolls
func (h *EmployeeHandler) ListPayrolls(c *fiber.Ctx) error {
	payrolls, err := h.uc.ListPayrolls(GetWarehouseID(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(payrolls)
}

// DownloadPayrollPDF genera y descarga la liquidación de sueldo en PDF.
// GET /api/payrolls/:id/pdf
func (h *EmployeeHandler) DownloadPayrollPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DescargarLiquidacion(c.Context(), GetWarehouseID(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
