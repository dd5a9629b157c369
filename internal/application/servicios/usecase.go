package servicios

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// ServiciosUseCase casos de uso de servicios ofrecidos. Un servicio se vende
// igual que un producto pero nunca toca stock.
type ServiciosUseCase struct {
	serviceRepo repository.ServiceRepository
}

// NewServiciosUseCase construye el caso de uso de servicios.
func NewServiciosUseCase(serviceRepo repository.ServiceRepository) *ServiciosUseCase {
	return &ServiciosUseCase{serviceRepo: serviceRepo}
}

// Create crea un servicio en la bodega.
func (uc *ServiciosUseCase) Create(warehouseID string, in dto.ServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Service{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	if err := uc.serviceRepo.Create(s); err != nil {
		return nil, err
	}
	return toResponse(s), nil
}

// List lista los servicios activos de la bodega.
func (uc *ServiciosUseCase) List(warehouseID string) ([]dto.ServiceResponse, error) {
	services, err := uc.serviceRepo.ListActiveByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, *toResponse(s))
	}
	return out, nil
}

// Delete desactiva un servicio (soft-delete).
func (uc *ServiciosUseCase) Delete(warehouseID, id string) error {
	s, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil || !s.Active {
		return domain.ErrNotFound
	}
	if s.WarehouseID != warehouseID {
		return domain.ErrForbidden
	}
	return uc.serviceRepo.Deactivate(id)
}

func toResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		CreatedAt:   s.CreatedAt,
	}
}
