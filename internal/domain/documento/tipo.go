package documento

// Tipo identifica la clase de documento comercial. En la base de datos viaja
// como string; en el borde del compositor se trata como enum cerrado.
type Tipo string

const (
	TipoFactura    Tipo = "factura"
	TipoBoleta     Tipo = "boleta"
	TipoCotizacion Tipo = "cotizacion"
)

// Titulo devuelve el título impreso del documento. El caso por defecto cubre
// tipos desconocidos o vacíos que pudieran llegar desde registros antiguos.
func (t Tipo) Titulo() string {
	switch t {
	case TipoFactura:
		return "FACTURA ELECTRÓNICA"
	case TipoBoleta:
		return "BOLETA ELECTRÓNICA"
	case TipoCotizacion:
		return "COTIZACIÓN"
	default:
		return "DOCUMENTO"
	}
}

// Valido indica si el tipo es uno de los tres conocidos.
func (t Tipo) Valido() bool {
	switch t {
	case TipoFactura, TipoBoleta, TipoCotizacion:
		return true
	}
	return false
}

// Folio resuelve el número a imprimir en el documento. Las cotizaciones
// admiten un folio manual (talonario en papel compartido con el taller) que
// tiene precedencia sobre el folio del sistema; para boletas y facturas el
// folio manual se ignora siempre.
func Folio(t Tipo, folioSistema, folioManual string) string {
	if t == TipoCotizacion && folioManual != "" {
		return folioManual
	}
	if folioSistema == "" {
		return "00001"
	}
	return folioSistema
}
