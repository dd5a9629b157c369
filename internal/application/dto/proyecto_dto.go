package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectMaterialRequest material reservado para el proyecto.
type ProjectMaterialRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// CreateProjectRequest alta de proyecto con reserva de materiales.
type CreateProjectRequest struct {
	Name        string                   `json:"name" validate:"required"`
	Description string                   `json:"description"`
	ClientID    *string                  `json:"client_id"`
	StartDate   time.Time                `json:"start_date"`
	Materials   []ProjectMaterialRequest `json:"materials"`
}

// ProjectMaterialResponse material del proyecto.
type ProjectMaterialResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ProjectResponse proyecto con materiales.
type ProjectResponse struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	ClientName  string                    `json:"client_name,omitempty"`
	Status      string                    `json:"status"`
	StartDate   time.Time                 `json:"start_date"`
	EndDate     *time.Time                `json:"end_date,omitempty"`
	Materials   []ProjectMaterialResponse `json:"materials,omitempty"`
}
