package documento_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gestionpyme/erp-api/internal/domain/documento"
)

func TestTipo_Titulo(t *testing.T) {
	casos := []struct {
		tipo     documento.Tipo
		esperado string
	}{
		{documento.TipoFactura, "FACTURA ELECTRÓNICA"},
		{documento.TipoBoleta, "BOLETA ELECTRÓNICA"},
		{documento.TipoCotizacion, "COTIZACIÓN"},
		{documento.Tipo("nota_credito"), "DOCUMENTO"}, // tipo desconocido
		{documento.Tipo(""), "DOCUMENTO"},             // registro antiguo sin tipo
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, c.tipo.Titulo(), "título de %q", string(c.tipo))
	}
}

func TestTipo_Valido(t *testing.T) {
	assert.True(t, documento.TipoFactura.Valido())
	assert.True(t, documento.TipoBoleta.Valido())
	assert.True(t, documento.TipoCotizacion.Valido())
	assert.False(t, documento.Tipo("").Valido())
	assert.False(t, documento.Tipo("FACTURA").Valido(), "el tipo es case sensitive")
}

// ──────────────────────────────────────────────────────────────────────────────
// Folio: el folio manual (talonario en papel) solo tiene precedencia en
// cotizaciones; boletas y facturas usan siempre el correlativo del sistema.
// ──────────────────────────────────────────────────────────────────────────────

func TestFolio_ManualGanaEnCotizacion(t *testing.T) {
	folio := documento.Folio(documento.TipoCotizacion, "000123", "C-778")
	assert.Equal(t, "C-778", folio, "en cotización el folio manual tiene precedencia")
}

func TestFolio_ManualIgnoradoEnFacturaYBoleta(t *testing.T) {
	assert.Equal(t, "000123", documento.Folio(documento.TipoFactura, "000123", "C-778"),
		"la factura ignora el folio manual siempre")
	assert.Equal(t, "000123", documento.Folio(documento.TipoBoleta, "000123", "C-778"),
		"la boleta ignora el folio manual siempre")
}

func TestFolio_SistemaVacioUsaDefecto(t *testing.T) {
	assert.Equal(t, "00001", documento.Folio(documento.TipoBoleta, "", ""),
		"sin folio del sistema se imprime el folio por defecto")
}

func TestFolio_CotizacionSinManualUsaSistema(t *testing.T) {
	assert.Equal(t, "000077", documento.Folio(documento.TipoCotizacion, "000077", ""))
}
