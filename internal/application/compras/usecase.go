package compras

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

// ComprasUseCase casos de uso de proveedores y órdenes de compra. La
// recepción de una orden ingresa el stock de todas sus líneas de forma
// atómica junto al cambio de estado.
type ComprasUseCase struct {
	txRunner     TxRunner
	providerRepo repository.ProviderRepository
	orderRepo    repository.PurchaseOrderRepository
	productRepo  repository.ProductRepository
}

// NewComprasUseCase construye el caso de uso de compras.
func NewComprasUseCase(
	txRunner TxRunner,
	providerRepo repository.ProviderRepository,
	orderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
) *ComprasUseCase {
	return &ComprasUseCase{
		txRunner:     txRunner,
		providerRepo: providerRepo,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
	}
}

// CreateProvider crea un proveedor en la bodega.
func (uc *ComprasUseCase) CreateProvider(warehouseID string, in dto.ProviderRequest) (*dto.ProviderResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Provider{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		Name:        in.Name,
		RUT:         in.RUT,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		CreatedAt:   time.Now(),
	}
	if err := uc.providerRepo.Create(p); err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// ListProviders lista los proveedores de la bodega.
func (uc *ComprasUseCase) ListProviders(warehouseID string) ([]dto.ProviderResponse, error) {
	providers, err := uc.providerRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, *toProviderResponse(p))
	}
	return out, nil
}

// DeleteProvider elimina un proveedor.
func (uc *ComprasUseCase) DeleteProvider(warehouseID, id string) error {
	p, err := uc.providerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if p.WarehouseID != warehouseID {
		return domain.ErrForbidden
	}
	return uc.providerRepo.Delete(id)
}

// CreateOrder crea una orden de compra en estado pendiente. No toca stock:
// el ingreso ocurre recién al recibirla.
func (uc *ComprasUseCase) CreateOrder(warehouseID, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.ProviderID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	provider, err := uc.providerRepo.GetByID(in.ProviderID)
	if err != nil || provider == nil {
		return nil, domain.ErrNotFound
	}
	if provider.WarehouseID != warehouseID {
		return nil, domain.ErrForbidden
	}

	// Validar productos fuera de la tx (solo lectura)
	for _, item := range in.Items {
		if !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil || p == nil || !p.Active {
			return nil, domain.ErrNotFound
		}
		if p.WarehouseID != warehouseID {
			return nil, domain.ErrForbidden
		}
	}

	order := &entity.PurchaseOrder{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		UserID:      userID,
		ProviderID:  in.ProviderID,
		Status:      entity.PurchaseStatusPendiente,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseItemResponse, 0, len(in.Items))
	for _, item := range in.Items {
		oi := &entity.PurchaseOrderItem{
			ID:              uuid.New().String(),
			PurchaseOrderID: order.ID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			UnitCost:        item.UnitCost,
		}
		if err := uc.orderRepo.CreateItem(oi); err != nil {
			return nil, err
		}
		items = append(items, dto.PurchaseItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
	}
	resp := toOrderResponse(order, provider.Name)
	resp.Items = items
	return resp, nil
}

// ListOrders lista las órdenes de la bodega.
func (uc *ComprasUseCase) ListOrders(warehouseID string, page dto.PageRequest) ([]dto.PurchaseOrderResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByWarehouse(warehouseID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		providerName := ""
		if p, _ := uc.providerRepo.GetByID(o.ProviderID); p != nil {
			providerName = p.Name
		}
		out = append(out, *toOrderResponse(o, providerName))
	}
	return out, nil
}

// ReceiveOrder marca la orden como recibida e ingresa el stock de todas sus
// líneas en la misma transacción. Devuelve ErrConflict si la orden ya fue
// recibida o cancelada.
func (uc *ComprasUseCase) ReceiveOrder(ctx context.Context, warehouseID, orderID string) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.WarehouseID != warehouseID {
		return domain.ErrForbidden
	}
	items, err := uc.orderRepo.GetItemsByOrderID(orderID)
	if err != nil {
		return err
	}

	return uc.txRunner.RunCompra(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		stockRepo repository.StockRepository,
	) error {
		// MarkReceived solo transiciona desde pendiente: si otra recepción
		// ganó la carrera, esto falla y nada se ingresa.
		if err := orderRepo.MarkReceived(orderID, time.Now()); err != nil {
			return err
		}
		for _, item := range items {
			if err := stockRepo.Increment(item.ProductID, warehouseID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	return &dto.ProviderResponse{
		ID:        p.ID,
		Name:      p.Name,
		RUT:       p.RUT,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
	}
}

func toOrderResponse(o *entity.PurchaseOrder, providerName string) *dto.PurchaseOrderResponse {
	return &dto.PurchaseOrderResponse{
		ID:           o.ID,
		ProviderID:   o.ProviderID,
		ProviderName: providerName,
		Status:       o.Status,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
		ReceivedAt:   o.ReceivedAt,
	}
}
