package configuracion

import (
	"github.com/google/uuid"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// ConfiguracionUseCase identidad de la empresa por bodega: el bloque de
// emisor que se imprime en todos los documentos.
type ConfiguracionUseCase struct {
	settingsRepo repository.CompanySettingsRepository
}

// NewConfiguracionUseCase construye el caso de uso de configuración.
func NewConfiguracionUseCase(settingsRepo repository.CompanySettingsRepository) *ConfiguracionUseCase {
	return &ConfiguracionUseCase{settingsRepo: settingsRepo}
}

// Get obtiene la identidad de empresa de la bodega; nil si aún no se configuró.
func (uc *ConfiguracionUseCase) Get(warehouseID string) (*dto.CompanySettingsResponse, error) {
	s, err := uc.settingsRepo.GetByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(s), nil
}

// Upsert guarda la identidad de empresa completa.
func (uc *ConfiguracionUseCase) Upsert(warehouseID string, in dto.CompanySettingsRequest) (*dto.CompanySettingsResponse, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.CompanySettings{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		CompanyName: in.CompanyName,
		RUT:         in.RUT,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		Activity:    in.Activity,
		LogoURL:     in.LogoURL,
	}
	if err := uc.settingsRepo.Upsert(s); err != nil {
		return nil, err
	}
	return toResponse(s), nil
}

func toResponse(s *entity.CompanySettings) *dto.CompanySettingsResponse {
	return &dto.CompanySettingsResponse{
		CompanyName: s.CompanyName,
		RUT:         s.RUT,
		Address:     s.Address,
		Phone:       s.Phone,
		Email:       s.Email,
		Activity:    s.Activity,
		LogoURL:     s.LogoURL,
	}
}
