package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación de ProjectRepository (usable con pool o tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un nuevo proyecto.
func (r *ProjectRepo) Create(p *entity.Project) error {
	query := `
		INSERT INTO projects (id, warehouse_id, client_id, name, description, status, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.WarehouseID, p.ClientID, p.Name, nullIfEmpty(p.Description),
		p.Status, p.StartDate, p.EndDate, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// CreateMaterial asigna un material al proyecto.
func (r *ProjectRepo) CreateMaterial(m *entity.ProjectMaterial) error {
	query := `
		INSERT INTO project_materials (id, project_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.ProjectID, m.ProductID, m.Quantity)
	if err != nil {
		return fmt.Errorf("insert project material: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `
		SELECT id, warehouse_id, client_id, name, COALESCE(description, ''), status, start_date, end_date, created_at
		FROM projects WHERE id = $1`
	var p entity.Project
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.WarehouseID, &p.ClientID, &p.Name, &p.Description,
		&p.Status, &p.StartDate, &p.EndDate, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// GetMaterialsByProjectID obtiene los materiales asignados a un proyecto.
func (r *ProjectRepo) GetMaterialsByProjectID(projectID string) ([]*entity.ProjectMaterial, error) {
	query := `
		SELECT id, project_id, product_id, quantity
		FROM project_materials WHERE project_id = $1`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProjectMaterial
	for rows.Next() {
		var m entity.ProjectMaterial
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.ProductID, &m.Quantity); err != nil {
			return nil, fmt.Errorf("scan project material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListActiveByWarehouse lista los proyectos activos de la bodega.
func (r *ProjectRepo) ListActiveByWarehouse(warehouseID string) ([]*entity.Project, error) {
	query := `
		SELECT id, warehouse_id, client_id, name, COALESCE(description, ''), status, start_date, end_date, created_at
		FROM projects WHERE warehouse_id = $1 AND status = $2 ORDER BY start_date DESC`
	rows, err := r.q.Query(context.Background(), query, warehouseID, entity.ProjectStatusActivo)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.WarehouseID, &p.ClientID, &p.Name, &p.Description,
			&p.Status, &p.StartDate, &p.EndDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Finish marca el proyecto como finalizado. Solo transiciona desde activo;
// finalizar dos veces devolvería el stock remanente duplicado.
func (r *ProjectRepo) Finish(id string, endDate time.Time) error {
	query := `
		UPDATE projects SET status = $2, end_date = $3
		WHERE id = $1 AND status = $4`
	tag, err := r.q.Exec(context.Background(), query,
		id, entity.ProjectStatusFinalizado, endDate, entity.ProjectStatusActivo)
	if err != nil {
		return fmt.Errorf("finish project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}
