// Package documento contiene la lógica pura de los documentos comerciales
// (boleta, factura, cotización) y de las liquidaciones de sueldo: desglose de
// IVA, títulos, foliación y cálculo de totales. No conoce PDF ni persistencia;
// la representación gráfica vive en internal/infrastructure/pdf.
package documento

import "github.com/shopspring/decimal"

// factorIVA convierte un monto bruto (IVA incluido) a neto. Chile: IVA 19%.
var factorIVA = decimal.RequireFromString("1.19")

// DesglosarIVA separa un monto bruto (con IVA incluido) en neto e IVA:
//
//	neto = round(bruto / 1.19)
//	iva  = bruto - neto
//
// El IVA es siempre el residuo contra el neto redondeado, nunca se redondea
// por separado, de modo que neto + iva == bruto exacto a todo nivel.
//
// La función se aplica de forma independiente a nivel de línea (tabla de
// detalle) y a nivel de documento (bloque de totales, recalculado desde el
// total declarado). Ambos cálculos pueden diferir por redondeo y eso es
// comportamiento esperado, no un error a corregir.
func DesglosarIVA(bruto decimal.Decimal) (neto, iva decimal.Decimal) {
	neto = bruto.Div(factorIVA).Round(0)
	iva = bruto.Sub(neto)
	return neto, iva
}
