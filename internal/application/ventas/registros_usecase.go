package ventas

import (
	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// RegistrosUseCase consulta y administración del historial de ventas y
// cotizaciones emitidas.
type RegistrosUseCase struct {
	saleRepo repository.SaleRepository
}

// NewRegistrosUseCase construye el caso de uso de registros.
func NewRegistrosUseCase(saleRepo repository.SaleRepository) *RegistrosUseCase {
	return &RegistrosUseCase{saleRepo: saleRepo}
}

// List lista las ventas de la bodega, más recientes primero.
func (uc *RegistrosUseCase) List(warehouseID string, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.ListByWarehouse(warehouseID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Get obtiene una venta con sus líneas.
func (uc *RegistrosUseCase) Get(warehouseID, id string) (*dto.SaleResponse, error) {
	s, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if s.WarehouseID != warehouseID {
		return nil, domain.ErrForbidden
	}
	resp := toSaleResponse(s)
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return resp, nil
}

// Delete elimina un registro con sus líneas. El stock descontado no se
// repone: borrar un registro corrige el historial, no anula la operación.
func (uc *RegistrosUseCase) Delete(warehouseID, id string) error {
	s, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	if s.WarehouseID != warehouseID {
		return domain.ErrForbidden
	}
	if err := uc.saleRepo.DeleteItemsBySaleID(id); err != nil {
		return err
	}
	return uc.saleRepo.Delete(id)
}
