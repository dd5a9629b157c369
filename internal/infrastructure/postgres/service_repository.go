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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación de ServiceRepository (usable con pool o tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persiste un nuevo servicio.
func (r *ServiceRepo) Create(s *entity.Service) error {
	query := `
		INSERT INTO services (id, warehouse_id, name, description, price, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.WarehouseID, s.Name, nullIfEmpty(s.Description), s.Price, s.Active, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	query := `
		SELECT id, warehouse_id, name, COALESCE(description, ''), price, active, created_at
		FROM services WHERE id = $1`
	var s entity.Service
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.WarehouseID, &s.Name, &s.Description, &s.Price, &s.Active, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// ListActiveByWarehouse lista los servicios activos de la bodega.
func (r *ServiceRepo) ListActiveByWarehouse(warehouseID string) ([]*entity.Service, error) {
	query := `
		SELECT id, warehouse_id, name, COALESCE(description, ''), price, active, created_at
		FROM services WHERE warehouse_id = $1 AND active = true ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.WarehouseID, &s.Name, &s.Description, &s.Price, &s.Active, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Deactivate marca el servicio como inactivo (soft-delete).
func (r *ServiceRepo) Deactivate(id string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE services SET active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
