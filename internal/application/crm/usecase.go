package crm

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// CRMUseCase casos de uso de clientes: ABM y historial de compras.
type CRMUseCase struct {
	clientRepo repository.ClientRepository
	saleRepo   repository.SaleRepository
}

// NewCRMUseCase construye el caso de uso de CRM.
func NewCRMUseCase(clientRepo repository.ClientRepository, saleRepo repository.SaleRepository) *CRMUseCase {
	return &CRMUseCase{clientRepo: clientRepo, saleRepo: saleRepo}
}

// Create crea un cliente en la bodega.
func (uc *CRMUseCase) Create(warehouseID string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Client{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		Name:        in.Name,
		TaxID:       in.TaxID,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.clientRepo.Create(c); err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// List lista los clientes de la bodega.
func (uc *CRMUseCase) List(warehouseID string, page dto.PageRequest) ([]dto.ClientResponse, error) {
	page.DefaultPage()
	clients, err := uc.clientRepo.ListByWarehouse(warehouseID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toResponse(c))
	}
	return out, nil
}

// GetHistory obtiene un cliente con su historial de compras y cotizaciones.
func (uc *CRMUseCase) GetHistory(warehouseID, clientID string) (*dto.ClientHistoryResponse, error) {
	c, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.WarehouseID != warehouseID {
		return nil, domain.ErrForbidden
	}
	sales, err := uc.saleRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	history := &dto.ClientHistoryResponse{Client: *toResponse(c)}
	for _, s := range sales {
		resp := dto.SaleResponse{
			ID:                s.ID,
			Type:              s.Type,
			ReceiptNumber:     s.ReceiptNumber,
			QuoteNumberManual: s.QuoteNumberManual,
			NetAmount:         s.NetAmount,
			TaxAmount:         s.TaxAmount,
			TotalAmount:       s.TotalAmount,
			Status:            s.Status,
			CreatedAt:         s.CreatedAt,
		}
		if s.ClientSnapshot != nil {
			resp.ClientName = s.ClientSnapshot.Name
		}
		history.Sales = append(history.Sales, resp)
	}
	return history, nil
}

// Update actualiza un cliente. El snapshot de ventas pasadas no cambia.
func (uc *CRMUseCase) Update(warehouseID, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.WarehouseID != warehouseID {
		return nil, domain.ErrForbidden
	}
	c.Name = in.Name
	c.TaxID = in.TaxID
	c.Address = in.Address
	c.Phone = in.Phone
	c.Email = in.Email
	if err := uc.clientRepo.Update(c); err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// Delete elimina un cliente.
func (uc *CRMUseCase) Delete(warehouseID, id string) error {
	c, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if c.WarehouseID != warehouseID {
		return domain.ErrForbidden
	}
	return uc.clientRepo.Delete(id)
}

func toResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}
