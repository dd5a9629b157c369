package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/application/inventario"
)

// ProductHandler maneja productos y bodegas (protegido).
type ProductHandler struct {
	uc *inventario.InventarioUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *inventario.InventarioUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create crea un producto en la bodega del token.
// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.CreateProduct(GetWarehouseID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List lista los productos activos de la bodega.
// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	list, err := h.uc.ListProducts(GetWarehouseID(c), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene un producto con sus existencias.
// GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetProduct(GetWarehouseID(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(product)
}

// Update actualiza campos del producto (parcial).
// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.UpdateProduct(GetWarehouseID(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(product)
}

// Delete desactiva el producto (soft-delete).
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(GetWarehouseID(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListWarehouses lista las bodegas activas.
// GET /api/warehouses
func (h *ProductHandler) ListWarehouses(c *fiber.Ctx) error {
	warehouses, err := h.uc.ListWarehouses()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(warehouses)
}
