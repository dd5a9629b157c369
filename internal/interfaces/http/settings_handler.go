package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestionpyme/erp-api/internal/application/configuracion"
	"github.com/gestionpyme/erp-api/internal/application/dto"
)

// SettingsHandler maneja la identidad de empresa (protegido).
type SettingsHandler struct {
	uc *configuracion.ConfiguracionUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *configuracion.ConfiguracionUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get obtiene la identidad de empresa de la bodega.
// GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.uc.Get(GetWarehouseID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(settings)
}

// Upsert guarda la identidad de empresa completa.
// PUT /api/settings
func (h *SettingsHandler) Upsert(c *fiber.Ctx) error {
	var in dto.CompanySettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	settings, err := h.uc.Upsert(GetWarehouseID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(settings)
}
