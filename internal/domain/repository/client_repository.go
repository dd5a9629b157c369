package repository

import "github.com/gestionpyme/erp-api/internal/domain/entity"

// ClientRepository acceso a clientes del CRM.
type ClientRepository interface {
	Create(c *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Client, error)
	Update(c *entity.Client) error
	Delete(id string) error
}
