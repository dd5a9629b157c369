package dto

import "github.com/shopspring/decimal"

// MonthlySalesDTO ventas de un mes para el gráfico del dashboard.
type MonthlySalesDTO struct {
	Month string          `json:"month"` // ej: "2026-03"
	Total decimal.Decimal `json:"total"`
}

// TopProductDTO ranking de productos por unidades.
type TopProductDTO struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
}

// DashboardKPIs indicadores del mes en curso.
type DashboardKPIs struct {
	MonthSales        decimal.Decimal `json:"month_sales"`
	MonthTransactions int             `json:"month_transactions"`
	InventoryValue    decimal.Decimal `json:"inventory_value"`
	ProductCount      int             `json:"product_count"`
}

// DashboardResponse datos agregados del dashboard.
type DashboardResponse struct {
	SalesByMonth []MonthlySalesDTO `json:"sales_by_month"`
	TopProducts  []TopProductDTO   `json:"top_products"`
	KPIs         DashboardKPIs     `json:"kpis"`
}
