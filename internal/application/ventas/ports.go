package ventas

import (
	"context"

	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// TxRunner ejecuta el checkout dentro de una transacción: cabecera, líneas,
// folio correlativo y descuentos de stock se confirman o revierten juntos.
type TxRunner interface {
	RunVenta(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
	) error) error
}
