package repository

import "github.com/gestionpyme/erp-api/internal/domain/entity"

// UserRepository acceso a perfiles de usuario/trabajadores.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	ListByWarehouse(warehouseID string) ([]*entity.User, error)
	UpdateRoles(id string, roles []string) error
	UpdatePhone(id, phone string) error
}
