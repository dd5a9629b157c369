package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para el dashboard.
// Va siempre contra el pool (no participa en transacciones).
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetMonthlySales agrupa la venta por mes desde la fecha dada.
// Las cotizaciones no son venta: se excluyen del agregado.
func (r *ReportRepo) GetMonthlySales(ctx context.Context, warehouseID string, since time.Time) ([]repository.MonthlySales, error) {
	const query = `
	SELECT
	    EXTRACT(YEAR FROM s.created_at)::INT   AS year,
	    EXTRACT(MONTH FROM s.created_at)::INT  AS month,
	    COALESCE(SUM(s.total_amount), 0)       AS total,
	    COUNT(*)::INT                          AS count
	FROM sales s
	WHERE s.warehouse_id = $1
	  AND s.created_at >= $2
	  AND s.type <> 'cotizacion'
	  AND s.status = $3
	GROUP BY 1, 2
	ORDER BY 1, 2`

	rows, err := r.pool.Query(ctx, query, warehouseID, since, entity.SaleStatusCompletada)
	if err != nil {
		return nil, fmt.Errorf("reports.GetMonthlySales: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlySales
	for rows.Next() {
		var row repository.MonthlySales
		var month int
		if err := rows.Scan(&row.Year, &month, &row.Total, &row.Count); err != nil {
			return nil, fmt.Errorf("reports.GetMonthlySales scan: %w", err)
		}
		row.Month = time.Month(month)
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopProducts devuelve los productos más vendidos por unidades desde la fecha dada.
func (r *ReportRepo) GetTopProducts(ctx context.Context, warehouseID string, since time.Time, limit int) ([]repository.TopProduct, error) {
	const query = `
	SELECT
	    si.product_name,
	    SUM(si.quantity) AS units
	FROM sale_items si
	JOIN sales s ON s.id = si.sale_id
	WHERE s.warehouse_id = $1
	  AND s.created_at >= $2
	  AND s.type <> 'cotizacion'
	  AND s.status = $3
	GROUP BY si.product_name
	ORDER BY units DESC
	LIMIT $4`

	rows, err := r.pool.Query(ctx, query, warehouseID, since, entity.SaleStatusCompletada, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProduct
	for rows.Next() {
		var row repository.TopProduct
		if err := rows.Scan(&row.ProductName, &row.Quantity); err != nil {
			return nil, fmt.Errorf("reports.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetInventoryKPIs valoriza el inventario activo de la bodega a precio de venta.
func (r *ReportRepo) GetInventoryKPIs(ctx context.Context, warehouseID string) (*repository.InventoryKPIs, error) {
	const query = `
	SELECT
	    COALESCE(SUM(ps.quantity * p.price), 0) AS total_value,
	    COUNT(DISTINCT p.id)::INT               AS product_count
	FROM products p
	LEFT JOIN product_stock ps ON ps.product_id = p.id AND ps.warehouse_id = $1
	WHERE p.warehouse_id = $1 AND p.active = true`

	var kpis repository.InventoryKPIs
	err := r.pool.QueryRow(ctx, query, warehouseID).Scan(&kpis.TotalValue, &kpis.ProductCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &repository.InventoryKPIs{TotalValue: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("reports.GetInventoryKPIs: %w", err)
	}
	return &kpis, nil
}
