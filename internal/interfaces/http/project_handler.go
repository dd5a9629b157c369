package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/application/proyectos"
)

// ProjectHandler maneja proyectos/obras (protegido).
type ProjectHandler struct {
	uc *proyectos.ProyectosUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *proyectos.ProyectosUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// Create crea un proyecto y reserva sus materiales.
// POST /api/projects
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	project, err := h.uc.Create(c.Context(), GetWarehouseID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// List lista los proyectos activos.
// GET /api/projects
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.uc.List(GetWarehouseID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(projects)
}

// finishRequest consumo real por material al cerrar el proyecto.
type finishRequest struct {
	Used map[string]decimal.Decimal `json:"used"` // product_id -> cantidad consumida
}

// Finish cierra el proyecto y devuelve el stock no consumido.
// POST /api/projects/:id/finish
func (h *ProjectHandler) Finish(c *fiber.Ctx) error {
	var in finishRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Used == nil {
		in.Used = map[string]decimal.Decimal{}
	}
	if err := h.uc.Finish(c.Context(), GetWarehouseID(c), c.Params("id"), in.Used); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
