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

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación de ProviderRepository (usable con pool o tx).
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *ProviderRepo) Create(p *entity.Provider) error {
	query := `
		INSERT INTO providers (id, warehouse_id, name, rut, phone, email, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.WarehouseID, p.Name, nullIfEmpty(p.RUT), nullIfEmpty(p.Phone),
		nullIfEmpty(p.Email), nullIfEmpty(p.Address), p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProviderRepo) GetByID(id string) (*entity.Provider, error) {
	query := `
		SELECT id, warehouse_id, name, COALESCE(rut, ''), COALESCE(phone, ''),
		       COALESCE(email, ''), COALESCE(address, ''), created_at
		FROM providers WHERE id = $1`
	var p entity.Provider
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.WarehouseID, &p.Name, &p.RUT, &p.Phone, &p.Email, &p.Address, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return &p, nil
}

// ListByWarehouse lista los proveedores de la bodega.
func (r *ProviderRepo) ListByWarehouse(warehouseID string) ([]*entity.Provider, error) {
	query := `
		SELECT id, warehouse_id, name, COALESCE(rut, ''), COALESCE(phone, ''),
		       COALESCE(email, ''), COALESCE(address, ''), created_at
		FROM providers WHERE warehouse_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Provider
	for rows.Next() {
		var p entity.Provider
		if err := rows.Scan(&p.ID, &p.WarehouseID, &p.Name, &p.RUT, &p.Phone, &p.Email, &p.Address, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor por ID.
func (r *ProviderRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
