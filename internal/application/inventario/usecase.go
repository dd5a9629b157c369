package inventario

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// InventarioUseCase casos de uso de productos y existencias. El precio de
// venta es bruto (IVA incluido); el desglose tributario ocurre recién al
// emitir documentos.
type InventarioUseCase struct {
	productRepo   repository.ProductRepository
	stockRepo     repository.StockRepository
	warehouseRepo repository.WarehouseRepository
}

// NewInventarioUseCase construye el caso de uso de inventario.
func NewInventarioUseCase(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	warehouseRepo repository.WarehouseRepository,
) *InventarioUseCase {
	return &InventarioUseCase{productRepo: productRepo, stockRepo: stockRepo, warehouseRepo: warehouseRepo}
}

// CreateProduct crea un producto en la bodega. Devuelve ErrDuplicate si el
// SKU ya existe en ella.
func (uc *InventarioUseCase) CreateProduct(warehouseID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.CostPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.productRepo.GetByWarehouseAndSKU(warehouseID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Product{
		ID:            uuid.New().String(),
		WarehouseID:   warehouseID,
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		CostPrice:     in.CostPrice,
		Unit:          in.Unit,
		Category:      in.Category,
		Barcode:       in.Barcode,
		MinStockAlert: in.MinStockAlert,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p, false)
}

// GetProduct obtiene un producto con sus existencias por bodega.
func (uc *InventarioUseCase) GetProduct(warehouseID, id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Active {
		return nil, domain.ErrNotFound
	}
	if p.WarehouseID != warehouseID {
		return nil, domain.ErrForbidden
	}
	return uc.toResponse(p, true)
}

// ListProducts lista los productos activos de la bodega con stock agregado.
func (uc *InventarioUseCase) ListProducts(warehouseID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.ListActiveByWarehouse(warehouseID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp, err := uc.toResponse(p, false)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateProduct actualiza los campos presentes en la request (PATCH parcial).
func (uc *InventarioUseCase) UpdateProduct(warehouseID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Active {
		return nil, domain.ErrNotFound
	}
	if p.WarehouseID != warehouseID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.Price = *in.Price
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.CostPrice = *in.CostPrice
	}
	if in.Unit != nil {
		p.Unit = *in.Unit
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Barcode != nil {
		p.Barcode = *in.Barcode
	}
	if in.MinStockAlert != nil {
		p.MinStockAlert = *in.MinStockAlert
	}
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p, true)
}

// DeleteProduct desactiva el producto (soft-delete): el historial de ventas
// que lo referencia sigue intacto.
func (uc *InventarioUseCase) DeleteProduct(warehouseID, id string) error {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil || !p.Active {
		return domain.ErrNotFound
	}
	if p.WarehouseID != warehouseID {
		return domain.ErrForbidden
	}
	return uc.productRepo.Deactivate(id)
}

// ListWarehouses lista las bodegas activas.
func (uc *InventarioUseCase) ListWarehouses() ([]dto.WarehouseResponse, error) {
	warehouses, err := uc.warehouseRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, dto.WarehouseResponse{ID: w.ID, Name: w.Name, Address: w.Address, IsMain: w.IsMain})
	}
	return out, nil
}

func (uc *InventarioUseCase) toResponse(p *entity.Product, withStocks bool) (*dto.ProductResponse, error) {
	resp := &dto.ProductResponse{
		ID:            p.ID,
		WarehouseID:   p.WarehouseID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		CostPrice:     p.CostPrice,
		Unit:          p.Unit,
		Category:      p.Category,
		Barcode:       p.Barcode,
		MinStockAlert: p.MinStockAlert,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	stocks, err := uc.stockRepo.ListByProduct(p.ID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, s := range stocks {
		total = total.Add(s.Quantity)
		if withStocks {
			resp.Stocks = append(resp.Stocks, dto.StockByWarehouse{
				WarehouseID: s.WarehouseID,
				Quantity:    s.Quantity,
			})
		}
	}
	resp.TotalStock = total
	return resp, nil
}
