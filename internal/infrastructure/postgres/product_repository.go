package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	id, warehouse_id, sku, name, COALESCE(description, ''), price, cost_price,
	COALESCE(unit, ''), COALESCE(category, ''), COALESCE(barcode, ''), min_stock_alert,
	active, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.WarehouseID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.CostPrice,
		&p.Unit, &p.Category, &p.Barcode, &p.MinStockAlert,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (id, warehouse_id, sku, name, description, price, cost_price,
			unit, category, barcode, min_stock_alert, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.WarehouseID, p.SKU, p.Name, nullIfEmpty(p.Description), p.Price, p.CostPrice,
		nullIfEmpty(p.Unit), nullIfEmpty(p.Category), nullIfEmpty(p.Barcode), p.MinStockAlert,
		p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByWarehouseAndSKU obtiene un producto por bodega y SKU.
func (r *ProductRepo) GetByWarehouseAndSKU(warehouseID, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE warehouse_id = $1 AND sku = $2`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, warehouseID, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// ListActiveByWarehouse lista los productos activos de la bodega con paginación.
func (r *ProductRepo) ListActiveByWarehouse(warehouseID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE warehouse_id = $1 AND active = true
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza los datos comerciales de un producto.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, name = $3, description = $4, price = $5, cost_price = $6,
			unit = $7, category = $8, barcode = $9, min_stock_alert = $10, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.SKU, p.Name, nullIfEmpty(p.Description), p.Price, p.CostPrice,
		nullIfEmpty(p.Unit), nullIfEmpty(p.Category), nullIfEmpty(p.Barcode), p.MinStockAlert,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate marca el producto como inactivo (soft-delete). El historial de
// ventas que lo referencia queda intacto.
func (r *ProductRepo) Deactivate(id string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
