package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository (usable con pool o tx).
// Los roles se guardan como text[] nativo de PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo perfil de usuario.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (id, warehouse_id, email, password_hash, full_name, phone, roles, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.WarehouseID, u.Email, u.PasswordHash, u.FullName, nullIfEmpty(u.Phone),
		u.Roles, u.Status, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, warehouse_id, email, password_hash, full_name, COALESCE(phone, ''), roles, status, created_at, updated_at
		FROM users WHERE id = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.WarehouseID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone,
		&u.Roles, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// FindByEmail obtiene un perfil por email (para login).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, warehouse_id, email, password_hash, full_name, COALESCE(phone, ''), roles, status, created_at, updated_at
		FROM users WHERE email = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.WarehouseID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone,
		&u.Roles, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

// ListByWarehouse lista los perfiles de una bodega ordenados por nombre.
func (r *UserRepo) ListByWarehouse(warehouseID string) ([]*entity.User, error) {
	query := `
		SELECT id, warehouse_id, email, password_hash, full_name, COALESCE(phone, ''), roles, status, created_at, updated_at
		FROM users WHERE warehouse_id = $1 ORDER BY full_name`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.WarehouseID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone,
			&u.Roles, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// UpdateRoles reemplaza el set completo de roles del usuario.
func (r *UserRepo) UpdateRoles(id string, roles []string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE users SET roles = $2, updated_at = now() WHERE id = $1`, id, roles)
	if err != nil {
		return fmt.Errorf("update roles: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePhone actualiza el teléfono de contacto del perfil.
func (r *UserRepo) UpdatePhone(id, phone string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE users SET phone = $2, updated_at = now() WHERE id = $1`, id, nullIfEmpty(phone))
	if err != nil {
		return fmt.Errorf("update phone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
