package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetByProductAndWarehouse obtiene la existencia de un producto en una bodega.
// Si no hay fila devuelve cantidad cero (producto nunca ingresado).
func (r *StockRepo) GetByProductAndWarehouse(productID, warehouseID string) (*entity.ProductStock, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity
		FROM product_stock WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.ProductStock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ID, &s.ProductID, &s.WarehouseID, &s.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.ProductStock{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// ListByProduct lista las existencias de un producto en todas las bodegas.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.ProductStock, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity
		FROM product_stock WHERE product_id = $1`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductStock
	for rows.Next() {
		var s entity.ProductStock
		if err := rows.Scan(&s.ID, &s.ProductID, &s.WarehouseID, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Decrement descuenta stock en una sola sentencia con guardia de cantidad:
// si no hay fila o la existencia es menor a lo pedido, el UPDATE no afecta
// filas y se devuelve ErrInsufficientStock. Sin ventana de carrera entre
// lectura y escritura.
func (r *StockRepo) Decrement(productID, warehouseID string, qty decimal.Decimal) error {
	query := `
		UPDATE product_stock SET quantity = quantity - $3
		WHERE product_id = $1 AND warehouse_id = $2 AND quantity >= $3`
	tag, err := r.q.Exec(context.Background(), query, productID, warehouseID, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// Increment suma stock; crea la fila si el producto nunca tuvo existencia en la bodega.
func (r *StockRepo) Increment(productID, warehouseID string, qty decimal.Decimal) error {
	query := `
		INSERT INTO product_stock (id, product_id, warehouse_id, quantity)
		VALUES (gen_random_uuid(), $1, $2, $3)
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = product_stock.quantity + EXCLUDED.quantity`
	_, err := r.q.Exec(context.Background(), query, productID, warehouseID, qty)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}
