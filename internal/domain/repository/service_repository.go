package repository

import "github.com/gestionpyme/erp-api/internal/domain/entity"

// ServiceRepository acceso a servicios ofrecidos.
type ServiceRepository interface {
	Create(s *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	ListActiveByWarehouse(warehouseID string) ([]*entity.Service, error)
	Deactivate(id string) error
}
