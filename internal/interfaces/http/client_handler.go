package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestionpyme/erp-api/internal/application/crm"
	"github.com/gestionpyme/erp-api/internal/application/dto"
)

// ClientHandler maneja los clientes del CRM (protegido).
type ClientHandler struct {
	uc *crm.CRMUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *crm.CRMUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create crea un cliente.
// POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client, err := h.uc.Create(GetWarehouseID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List lista los clientes de la bodega.
// GET /api/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	clients, err := h.uc.List(GetWarehouseID(c), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(clients)
}

// GetHistory obtiene un cliente con su historial de compras.
// GET /api/clients/:id/history
func (h *ClientHandler) GetHistory(c *fiber.Ctx) error {
	history, err := h.uc.GetHistory(GetWarehouseID(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(history)
}

// Update actualiza un cliente.
// PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client, err := h.uc.Update(GetWarehouseID(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(client)
}

// Delete elimina un cliente.
// DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetWarehouseID(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
