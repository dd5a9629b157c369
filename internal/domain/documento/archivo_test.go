package documento_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gestionpyme/erp-api/internal/domain/documento"
)

func TestNombreArchivo(t *testing.T) {
	assert.Equal(t, "factura_000123.pdf",
		documento.NombreArchivo(documento.TipoFactura, "000123"))
	assert.Equal(t, "cotizacion_C-778.pdf",
		documento.NombreArchivo(documento.TipoCotizacion, "C-778"))
}

func TestNombreArchivoLiquidacion_NormalizaTildesYEspacios(t *testing.T) {
	periodo := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Liquidacion_Jose_Perez_2024-05.pdf",
		documento.NombreArchivoLiquidacion("José Pérez", periodo))
	assert.Equal(t, "Liquidacion_Maria_Munoz_2024-05.pdf",
		documento.NombreArchivoLiquidacion("María Muñoz", periodo))
}

func TestNombreArchivoLiquidacion_NombreVacioUsaDefecto(t *testing.T) {
	periodo := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Liquidacion_empleado_2024-12.pdf",
		documento.NombreArchivoLiquidacion("   ", periodo))
}
