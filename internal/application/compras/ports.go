package compras

import (
	"context"

	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// TxRunner ejecuta la recepción de una orden dentro de una transacción: el
// cambio de estado y los incrementos de stock se confirman o revierten juntos.
type TxRunner interface {
	RunCompra(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		stockRepo repository.StockRepository,
	) error) error
}
