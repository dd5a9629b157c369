package documento

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmpleadoSnapshot es la copia del trabajador al momento de emitir la
// liquidación (mismo criterio de snapshot que ClienteSnapshot).
type EmpleadoSnapshot struct {
	NombreCompleto string
	RUT            string
	Cargo          string
}

// ItemLiquidacion es un haber o descuento con concepto y monto.
type ItemLiquidacion struct {
	Concepto string
	Monto    decimal.Decimal
}

// Liquidacion es una liquidación de sueldo mensual.
type Liquidacion struct {
	Periodo     time.Time // se imprime como YYYY-MM
	SueldoBase  decimal.Decimal
	Bonos       []ItemLiquidacion
	Descuentos  []ItemLiquidacion
}

// SueldoLiquido recalcula el líquido a pagar desde los componentes:
//
//	líquido = sueldo base + Σ bonos - Σ descuentos
//
// Siempre se recalcula al momento del render; jamás se confía en un total
// pre-almacenado, que puede quedar obsoleto si los bonos o descuentos se
// editaron después de cachearlo.
func (l *Liquidacion) SueldoLiquido() decimal.Decimal {
	total := l.SueldoBase
	for _, b := range l.Bonos {
		total = total.Add(b.Monto)
	}
	for _, d := range l.Descuentos {
		total = total.Sub(d.Monto)
	}
	return total
}
