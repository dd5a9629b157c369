package documento

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestionpyme/erp-api/internal/domain"
)

// Textos de reemplazo para campos opcionales ausentes. El documento es un
// registro legal: un dato faltante se imprime de forma explícita, nunca como
// espacio en blanco, para distinguirlo de un error de renderizado.
const (
	SinNombreEmpresa = "MI EMPRESA"
	SinRUT           = "Sin RUT"
	SinDireccion     = "Dirección Comercial"
	SinGiro          = "Giro Comercial"
	SinTelefono      = "-"
	ClienteMostrador = "Cliente Mostrador"
	SinRUTCliente    = "N/A"
	SinCiudad        = "Ciudad, País"
)

// Emisor es la identidad de la empresa que emite el documento. Se entrega
// fresca en cada render; el compositor no la persiste.
type Emisor struct {
	Nombre    string
	RUT       string
	Direccion string
	Telefono  string
	Email     string
	Giro      string
	LogoURL   string
}

// ClienteSnapshot es la copia del cliente tomada al momento de la venta.
// Siempre es snapshot y no referencia viva: el documento debe quedar estable
// aunque el registro del cliente cambie después.
type ClienteSnapshot struct {
	Nombre    string
	RUT       string
	Direccion string
	Telefono  string
}

// Linea es una línea de detalle con precio unitario bruto (IVA incluido).
type Linea struct {
	Descripcion    string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
}

// Venta son los datos de cabecera que consume el compositor.
type Venta struct {
	Tipo        Tipo
	Folio       string // folio del sistema (receipt_number)
	FolioManual string // solo cotizaciones; ver Folio()
	Fecha       time.Time
	Total       decimal.Decimal // bruto declarado
	Cliente     *ClienteSnapshot
}

// Validar verifica los campos numéricos sin los cuales el layout es imposible.
// Los campos de texto opcionales no se validan: se imprimen con placeholder.
func (v *Venta) Validar() error {
	if v.Total.IsNegative() {
		return fmt.Errorf("%w: total_amount negativo", domain.ErrInvalidInput)
	}
	return nil
}

// LineaCalculada es una línea con el desglose neto/IVA listo para imprimir.
type LineaCalculada struct {
	Cantidad    decimal.Decimal
	Descripcion string
	PrecioNeto  decimal.Decimal // round(unitario / 1.19)
	TotalNeto   decimal.Decimal // precio neto × cantidad
	TotalIVA    decimal.Decimal // total bruto - total neto
	TotalBruto  decimal.Decimal
}

// CalcularLinea desglosa una línea de abajo hacia arriba: primero el precio
// unitario neto redondeado y desde ahí los totales de la línea.
func CalcularLinea(l Linea) LineaCalculada {
	precioNeto, _ := DesglosarIVA(l.PrecioUnitario)
	totalBruto := l.PrecioUnitario.Mul(l.Cantidad)
	totalNeto := precioNeto.Mul(l.Cantidad)
	return LineaCalculada{
		Cantidad:    l.Cantidad,
		Descripcion: l.Descripcion,
		PrecioNeto:  precioNeto,
		TotalNeto:   totalNeto,
		TotalIVA:    totalBruto.Sub(totalNeto),
		TotalBruto:  totalBruto,
	}
}

// Totales es el bloque de resumen del documento.
type Totales struct {
	Neto      decimal.Decimal
	Descuento decimal.Decimal // reservado; hoy siempre 0
	IVA       decimal.Decimal
	Total     decimal.Decimal
}

// CalcularTotales recalcula neto e IVA de arriba hacia abajo desde el total
// bruto declarado, en vez de sumar las líneas. Así el bloque de totales
// siempre cuadra contra el total impreso aunque el redondeo por línea drifte.
// Política deliberada y auditable: los totales de cabecera NO se suman desde
// el detalle.
func CalcularTotales(totalBruto decimal.Decimal) Totales {
	neto, iva := DesglosarIVA(totalBruto)
	return Totales{
		Neto:      neto,
		Descuento: decimal.Zero,
		IVA:       iva,
		Total:     totalBruto,
	}
}
