package proyectos

import (
	"context"

	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// TxRunner ejecuta la creación y el cierre de proyectos dentro de una
// transacción: proyecto, materiales y movimientos de stock se confirman o
// revierten juntos.
type TxRunner interface {
	RunProyecto(ctx context.Context, fn func(
		projectRepo repository.ProjectRepository,
		stockRepo repository.StockRepository,
	) error) error
}
