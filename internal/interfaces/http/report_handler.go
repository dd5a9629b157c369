package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestionpyme/erp-api/internal/application/reportes"
)

// ReportHandler maneja el dashboard de reportes (protegido).
type ReportHandler struct {
	uc *reportes.ReportesUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reportes.ReportesUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard devuelve venta mensual, ranking de productos y KPIs.
// GET /api/reports/dashboard
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.uc.GetDashboard(c.Context(), GetWarehouseID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dashboard)
}
