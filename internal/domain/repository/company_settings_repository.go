package repository

import "github.com/gestionpyme/erp-api/internal/domain/entity"

// CompanySettingsRepository acceso a la identidad de la empresa por bodega.
type CompanySettingsRepository interface {
	GetByWarehouse(warehouseID string) (*entity.CompanySettings, error)
	Upsert(s *entity.CompanySettings) error
}
