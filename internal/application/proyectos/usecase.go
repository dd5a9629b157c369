package proyectos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// ProyectosUseCase casos de uso de proyectos/obras. Crear un proyecto reserva
// sus materiales descontando stock; finalizarlo devuelve a bodega lo que no
// se consumió.
type ProyectosUseCase struct {
	txRunner    TxRunner
	projectRepo repository.ProjectRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
}

// NewProyectosUseCase construye el caso de uso de proyectos.
func NewProyectosUseCase(
	txRunner TxRunner,
	projectRepo repository.ProjectRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
) *ProyectosUseCase {
	return &ProyectosUseCase{
		txRunner:    txRunner,
		projectRepo: projectRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
	}
}

// Create crea un proyecto activo y descuenta el stock de sus materiales en
// la misma transacción. Si algún material no tiene existencia suficiente,
// no se crea nada.
func (uc *ProyectosUseCase) Create(ctx context.Context, warehouseID string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	clientName := ""
	if in.ClientID != nil {
		client, err := uc.clientRepo.GetByID(*in.ClientID)
		if err != nil || client == nil {
			return nil, domain.ErrNotFound
		}
		if client.WarehouseID != warehouseID {
			return nil, domain.ErrForbidden
		}
		clientName = client.Name
	}

	// Validar materiales fuera de la tx (solo lectura)
	names := make(map[string]string, len(in.Materials))
	for _, m := range in.Materials {
		if !m.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p, err := uc.productRepo.GetByID(m.ProductID)
		if err != nil || p == nil || !p.Active {
			return nil, domain.ErrNotFound
		}
		if p.WarehouseID != warehouseID {
			return nil, domain.ErrForbidden
		}
		names[m.ProductID] = p.Name
	}

	startDate := in.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}
	project := &entity.Project{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		ClientID:    in.ClientID,
		Name:        in.Name,
		Description: in.Description,
		Status:      entity.ProjectStatusActivo,
		StartDate:   startDate,
		CreatedAt:   time.Now(),
	}

	err := uc.txRunner.RunProyecto(ctx, func(
		projectRepo repository.ProjectRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := projectRepo.Create(project); err != nil {
			return err
		}
		for _, m := range in.Materials {
			material := &entity.ProjectMaterial{
				ID:        uuid.New().String(),
				ProjectID: project.ID,
				ProductID: m.ProductID,
				Quantity:  m.Quantity,
			}
			if err := projectRepo.CreateMaterial(material); err != nil {
				return err
			}
			if err := stockRepo.Decrement(m.ProductID, warehouseID, m.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toResponse(project, clientName)
	for _, m := range in.Materials {
		resp.Materials = append(resp.Materials, dto.ProjectMaterialResponse{
			ProductID:   m.ProductID,
			ProductName: names[m.ProductID],
			Quantity:    m.Quantity,
		})
	}
	return resp, nil
}

// List lista los proyectos activos de la bodega.
func (uc *ProyectosUseCase) List(warehouseID string) ([]dto.ProjectResponse, error) {
	projects, err := uc.projectRepo.ListActiveByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		clientName := ""
		if p.ClientID != nil {
			if c, _ := uc.clientRepo.GetByID(*p.ClientID); c != nil {
				clientName = c.Name
			}
		}
		out = append(out, *toResponse(p, clientName))
	}
	return out, nil
}

// Finish cierra el proyecto y devuelve a bodega el stock no consumido.
// returned mapea product_id -> cantidad usada; lo no usado de cada material
// vuelve al inventario. Devuelve ErrConflict si el proyecto ya fue cerrado.
func (uc *ProyectosUseCase) Finish(ctx context.Context, warehouseID, projectID string, used map[string]decimal.Decimal) error {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	if project.WarehouseID != warehouseID {
		return domain.ErrForbidden
	}
	materials, err := uc.projectRepo.GetMaterialsByProjectID(projectID)
	if err != nil {
		return err
	}

	return uc.txRunner.RunProyecto(ctx, func(
		projectRepo repository.ProjectRepository,
		stockRepo repository.StockRepository,
	) error {
		// Finish solo transiciona desde activo: un doble cierre no devuelve
		// el remanente dos veces.
		if err := projectRepo.Finish(projectID, time.Now()); err != nil {
			return err
		}
		for _, m := range materials {
			consumed := used[m.ProductID]
			if consumed.IsNegative() || consumed.GreaterThan(m.Quantity) {
				return domain.ErrInvalidInput
			}
			remaining := m.Quantity.Sub(consumed)
			if remaining.GreaterThan(decimal.Zero) {
				if err := stockRepo.Increment(m.ProductID, warehouseID, remaining); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func toResponse(p *entity.Project, clientName string) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ClientName:  clientName,
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
}
