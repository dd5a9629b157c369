package reportes

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// mesesHistorial ventana del gráfico de venta mensual.
const mesesHistorial = 6

// topProductos tamaño del ranking de productos.
const topProductos = 5

// ReportesUseCase arma el dashboard: venta por mes, ranking de productos y
// KPIs del mes en curso. Solo lectura.
type ReportesUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportesUseCase construye el caso de uso de reportes.
func NewReportesUseCase(reportRepo repository.ReportRepository) *ReportesUseCase {
	return &ReportesUseCase{reportRepo: reportRepo}
}

// GetDashboard agrega los datos del dashboard de la bodega.
func (uc *ReportesUseCase) GetDashboard(ctx context.Context, warehouseID string) (*dto.DashboardResponse, error) {
	now := time.Now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(mesesHistorial - 1), 0)

	monthly, err := uc.reportRepo.GetMonthlySales(ctx, warehouseID, since)
	if err != nil {
		return nil, err
	}
	top, err := uc.reportRepo.GetTopProducts(ctx, warehouseID, since, topProductos)
	if err != nil {
		return nil, err
	}
	kpis, err := uc.reportRepo.GetInventoryKPIs(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		KPIs: dto.DashboardKPIs{
			MonthSales:     decimal.Zero,
			InventoryValue: kpis.TotalValue,
			ProductCount:   kpis.ProductCount,
		},
	}
	for _, m := range monthly {
		resp.SalesByMonth = append(resp.SalesByMonth, dto.MonthlySalesDTO{
			Month: fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)),
			Total: m.Total,
		})
		if m.Year == now.Year() && m.Month == now.Month() {
			resp.KPIs.MonthSales = m.Total
			resp.KPIs.MonthTransactions = m.Count
		}
	}
	for _, t := range top {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductDTO{Name: t.ProductName, Quantity: t.Quantity})
	}
	return resp, nil
}
