package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestionpyme/erp-api/internal/application/compras"
	"github.com/gestionpyme/erp-api/internal/application/proyectos"
	"github.com/gestionpyme/erp-api/internal/application/ventas"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// Ensure TxRunner implements los runners de ventas, compras y proyectos.
var _ ventas.TxRunner = (*TxRunner)(nil)
var _ compras.TxRunner = (*TxRunner)(nil)
var _ proyectos.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunVenta inicia una transacción con los repos del checkout: la venta, sus
// líneas, el folio correlativo y los descuentos de stock comparten commit.
func (r *TxRunner) RunVenta(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	stockRepo := NewStockRepository(tx)

	if err := fn(saleRepo, stockRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCompra inicia una transacción para la recepción de órdenes de compra:
// el cambio de estado y los incrementos de stock comparten commit.
func (r *TxRunner) RunCompra(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	stockRepo repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewPurchaseOrderRepository(tx)
	stockRepo := NewStockRepository(tx)

	if err := fn(orderRepo, stockRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProyecto inicia una transacción para crear o finalizar proyectos:
// el proyecto, sus materiales y los movimientos de stock comparten commit.
func (r *TxRunner) RunProyecto(ctx context.Context, fn func(
	projectRepo repository.ProjectRepository,
	stockRepo repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	projectRepo := NewProjectRepository(tx)
	stockRepo := NewStockRepository(tx)

	if err := fn(projectRepo, stockRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
