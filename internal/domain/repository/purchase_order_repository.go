package repository

import (
	"time"

	"github.com/gestionpyme/erp-api/internal/domain/entity"
)

// PurchaseOrderRepository acceso a órdenes de compra.
type PurchaseOrderRepository interface {
	Create(o *entity.PurchaseOrder) error
	CreateItem(item *entity.PurchaseOrderItem) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	GetItemsByOrderID(orderID string) ([]*entity.PurchaseOrderItem, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.PurchaseOrder, error)
	MarkReceived(id string, receivedAt time.Time) error
}
