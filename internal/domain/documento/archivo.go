package documento

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NombreArchivo arma el nombre del PDF de un documento comercial:
// <tipo>_<folio>.pdf, ej: factura_000123.pdf.
func NombreArchivo(t Tipo, folio string) string {
	return fmt.Sprintf("%s_%s.pdf", string(t), folio)
}

// NombreArchivoLiquidacion arma el nombre del PDF de una liquidación:
// Liquidacion_<nombre>_<YYYY-MM>.pdf. El nombre del trabajador se normaliza
// a ASCII seguro para sistemas de archivos.
func NombreArchivoLiquidacion(nombreEmpleado string, periodo time.Time) string {
	return fmt.Sprintf("Liquidacion_%s_%s.pdf", normalizarNombre(nombreEmpleado), periodo.Format("2006-01"))
}

// normalizarNombre quita tildes (NFD + eliminación de marcas diacríticas) y
// reemplaza espacios por guiones bajos: "José Pérez" -> "Jose_Perez".
func normalizarNombre(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plano, _, err := transform.String(t, s)
	if err != nil {
		plano = s
	}
	plano = strings.TrimSpace(plano)
	if plano == "" {
		plano = "empleado"
	}
	return strings.ReplaceAll(plano, " ", "_")
}
