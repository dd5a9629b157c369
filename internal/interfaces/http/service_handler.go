package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/application/servicios"
)

// ServiceHandler maneja los servicios ofrecidos (protegido).
type ServiceHandler struct {
	uc *servicios.ServiciosUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *servicios.ServiciosUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create crea un servicio.
// POST /api/services
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.ServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	service, err := h.uc.Create(GetWarehouseID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// List lista los servicios activos de la bodega.
// GET /api/services
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	services, err := h.uc.List(GetWarehouseID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(services)
}

// Delete desactiva un servicio.
// DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetWarehouseID(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
