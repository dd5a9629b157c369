package documentos

import (
	"context"

	"github.com/gestionpyme/erp-api/internal/domain/documento"
)

// GeneradorPDF es el puerto hacia el motor de layout (Maroto). El caso de uso
// arma los snapshots y delega; la única suspensión del flujo (fetch del logo)
// ocurre dentro del generador, antes de finalizar el encabezado.
type GeneradorPDF interface {
	GenerarVenta(ctx context.Context, venta *documento.Venta, emisor documento.Emisor, lineas []documento.Linea) ([]byte, error)
	GenerarLiquidacion(ctx context.Context, liq *documento.Liquidacion, empleado documento.EmpleadoSnapshot, emisor documento.Emisor) ([]byte, error)
}
