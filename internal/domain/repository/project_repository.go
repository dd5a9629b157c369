package repository

import (
	"time"

	"github.com/gestionpyme/erp-api/internal/domain/entity"
)

// ProjectRepository acceso a proyectos y sus materiales.
type ProjectRepository interface {
	Create(p *entity.Project) error
	CreateMaterial(m *entity.ProjectMaterial) error
	GetByID(id string) (*entity.Project, error)
	GetMaterialsByProjectID(projectID string) ([]*entity.ProjectMaterial, error)
	ListActiveByWarehouse(warehouseID string) ([]*entity.Project, error)
	Finish(id string, endDate time.Time) error
}
