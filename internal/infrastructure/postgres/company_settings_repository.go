package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

var _ repository.CompanySettingsRepository = (*CompanySettingsRepo)(nil)

// CompanySettingsRepo implementación de CompanySettingsRepository.
// Hay a lo más un registro por bodega (constraint único sobre warehouse_id).
type CompanySettingsRepo struct {
	q Querier
}

// NewCompanySettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanySettingsRepository(q Querier) *CompanySettingsRepo {
	return &CompanySettingsRepo{q: q}
}

// GetByWarehouse obtiene la identidad de empresa de una bodega. Devuelve nil
// si todavía no se configuró (los documentos salen con placeholders).
func (r *CompanySettingsRepo) GetByWarehouse(warehouseID string) (*entity.CompanySettings, error) {
	query := `
		SELECT id, warehouse_id, company_name, COALESCE(rut, ''), COALESCE(address, ''),
		       COALESCE(phone, ''), COALESCE(email, ''), COALESCE(activity, ''), COALESCE(logo_url, ''),
		       created_at, updated_at
		FROM company_settings WHERE warehouse_id = $1`
	var s entity.CompanySettings
	err := r.q.QueryRow(context.Background(), query, warehouseID).Scan(
		&s.ID, &s.WarehouseID, &s.CompanyName, &s.RUT, &s.Address,
		&s.Phone, &s.Email, &s.Activity, &s.LogoURL,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company settings: %w", err)
	}
	return &s, nil
}

// Upsert inserta o reemplaza la identidad de empresa de la bodega.
func (r *CompanySettingsRepo) Upsert(s *entity.CompanySettings) error {
	query := `
		INSERT INTO company_settings (id, warehouse_id, company_name, rut, address, phone, email, activity, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		ON CONFLICT (warehouse_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			rut = EXCLUDED.rut,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			activity = EXCLUDED.activity,
			logo_url = EXCLUDED.logo_url,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.WarehouseID, s.CompanyName, nullIfEmpty(s.RUT), nullIfEmpty(s.Address),
		nullIfEmpty(s.Phone), nullIfEmpty(s.Email), nullIfEmpty(s.Activity), nullIfEmpty(s.LogoURL),
	)
	if err != nil {
		return fmt.Errorf("upsert company settings: %w", err)
	}
	return nil
}
