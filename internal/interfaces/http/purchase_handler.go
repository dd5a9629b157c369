package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestionpyme/erp-api/internal/application/compras"
	"github.com/gestionpyme/erp-api/internal/application/dto"
)

// PurchaseHandler maneja proveedores y órdenes de compra (protegido).
type PurchaseHandler struct {
	uc *compras.ComprasUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *compras.ComprasUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// CreateProvider crea un proveedor.
// POST /api/providers
func (h *PurchaseHandler) CreateProvider(c *fiber.Ctx) error {
	var in dto.ProviderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	provider, err := h.uc.CreateProvider(GetWarehouseID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(provider)
}

// ListProviders lista los proveedores de la bodega.
// GET /api/providers
func (h *PurchaseHandler) ListProviders(c *fiber.Ctx) error {
	providers, err := h.uc.ListProviders(GetWarehouseID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(providers)
}

// DeleteProvider elimina un proveedor.
// DELETE /api/providers/:id
func (h *PurchaseHandler) DeleteProvider(c *fiber.Ctx) error {
	if err := h.uc.DeleteProvider(GetWarehouseID(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateOrder crea una orden de compra pendiente.
// POST /api/purchases
func (h *PurchaseHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.CreateOrder(GetWarehouseID(c), GetUserID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// ListOrders lista las órdenes de la bodega.
// GET /api/purchases
func (h *PurchaseHandler) ListOrders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	orders, err := h.uc.ListOrders(GetWarehouseID(c), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(orders)
}

// ReceiveOrder marca la orden como recibida e ingresa el stock.
// POST /api/purchases/:id/receive
func (h *PurchaseHandler) ReceiveOrder(c *fiber.Ctx) error {
	if err := h.uc.ReceiveOrder(c.Context(), GetWarehouseID(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
