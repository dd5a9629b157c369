package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
// El snapshot del cliente viaja como JSONB; el folio correlativo se toma
// de una secuencia por bodega dentro de la misma transacción de la venta.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de una venta o cotización.
func (r *SaleRepo) Create(s *entity.Sale) error {
	var snapshot any
	if s.ClientSnapshot != nil {
		b, err := json.Marshal(s.ClientSnapshot)
		if err != nil {
			return fmt.Errorf("marshal client snapshot: %w", err)
		}
		snapshot = b
	}
	query := `
		INSERT INTO sales (id, warehouse_id, user_id, client_id, client_snapshot, type,
			receipt_number, quote_number_manual, net_amount, tax_amount, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.WarehouseID, s.UserID, s.ClientID, snapshot, s.Type,
		s.ReceiptNumber, nullIfEmpty(s.QuoteNumberManual), s.NetAmount, s.TaxAmount, s.TotalAmount,
		s.Status, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, service_id, product_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.ServiceID, item.ProductName, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

const saleColumns = `
	id, warehouse_id, user_id, client_id, client_snapshot, type,
	receipt_number, COALESCE(quote_number_manual, ''), net_amount, tax_amount, total_amount, status, created_at`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var snapshot []byte
	err := row.Scan(
		&s.ID, &s.WarehouseID, &s.UserID, &s.ClientID, &snapshot, &s.Type,
		&s.ReceiptNumber, &s.QuoteNumberManual, &s.NetAmount, &s.TaxAmount, &s.TotalAmount,
		&s.Status, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(snapshot) > 0 {
		var cs entity.ClientSnapshot
		if err := json.Unmarshal(snapshot, &cs); err != nil {
			return nil, fmt.Errorf("unmarshal client snapshot: %w", err)
		}
		s.ClientSnapshot = &cs
	}
	return &s, nil
}

// GetByID obtiene la cabecera de una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetItemsBySaleID obtiene las líneas de una venta en orden de inserción.
func (r *SaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, service_id, product_name, quantity, unit_price
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ServiceID,
			&it.ProductName, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByWarehouse lista las ventas de la bodega, más recientes primero.
func (r *SaleRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + `
		FROM sales WHERE warehouse_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListByClient lista el historial de compras de un cliente.
func (r *SaleRepo) ListByClient(clientID string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + `
		FROM sales WHERE client_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list sales by client: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// DeleteItemsBySaleID elimina las líneas de una venta (previo al borrado de cabecera).
func (r *SaleRepo) DeleteItemsBySaleID(saleID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sale_items WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return nil
}

// Delete elimina la cabecera de una venta.
func (r *SaleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextReceiptNumber devuelve el siguiente folio correlativo de la bodega con
// padding a 6 dígitos. Usa un contador por bodega con UPSERT atómico; llamado
// dentro de la transacción de la venta, dos ventas concurrentes nunca
// comparten folio.
func (r *SaleRepo) NextReceiptNumber(warehouseID string) (string, error) {
	query := `
		INSERT INTO sale_counters (warehouse_id, last_number)
		VALUES ($1, 1)
		ON CONFLICT (warehouse_id)
		DO UPDATE SET last_number = sale_counters.last_number + 1
		RETURNING last_number`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, warehouseID).Scan(&n); err != nil {
		return "", fmt.Errorf("next receipt number: %w", err)
	}
	return fmt.Sprintf("%06d", n), nil
}
