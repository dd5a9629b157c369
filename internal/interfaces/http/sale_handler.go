package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestionpyme/erp-api/internal/application/documentos"
	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/application/ventas"
)

// SaleHandler maneja ventas, cotizaciones y la descarga de sus documentos (protegido).
type SaleHandler struct {
	createUC    *ventas.CreateSaleUseCase
	registrosUC *ventas.RegistrosUseCase
	pdfUC       *documentos.PDFUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(createUC *ventas.CreateSaleUseCase, registrosUC *ventas.RegistrosUseCase, pdfUC *documentos.PDFUseCase) *SaleHandler {
	return &SaleHandler{createUC: createUC, registrosUC: registrosUC, pdfUC: pdfUC}
}

// Create procesa el checkout de una venta o cotización.
// POST /api/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.createUC.CreateSale(c.Context(), GetWarehouseID(c), GetUserID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// List lista el historial de ventas y cotizaciones.
// GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	list, err := h.registrosUC.List(GetWarehouseID(c), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene una venta con sus líneas.
// GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.registrosUC.Get(GetWarehouseID(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(sale)
}

// Delete elimina un registro de venta con sus líneas.
// DELETE /api/sales/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.registrosUC.Delete(GetWarehouseID(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF genera y descarga el documento de la venta (boleta, factura o
// cotización). El binario se arma en cada request; no se persiste.
// GET /api/sales/:id/pdf
func (h *SaleHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DescargarDocumentoVenta(c.Context(), GetWarehouseID(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
