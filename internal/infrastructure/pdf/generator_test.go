package pdf_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestionpyme/erp-api/internal/domain/documento"
	"github.com/gestionpyme/erp-api/internal/infrastructure/pdf"
	"github.com/gestionpyme/erp-api/pkg/logger"
)

// logoCaido simula un CDN inaccesible: todo fetch falla.
type logoCaido struct{ llamadas int }

func (f *logoCaido) Obtener(context.Context, string) ([]byte, error) {
	f.llamadas++
	return nil, errors.New("dial tcp: connection refused")
}

// logoBasura simula un CDN que responde 200 con contenido que no es imagen
// (página de error HTML).
type logoBasura struct{}

func (f *logoBasura) Obtener(context.Context, string) ([]byte, error) {
	return []byte("<html><body>404 Not Found</body></html>"), nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func ventaDeEjemplo() (*documento.Venta, documento.Emisor, []documento.Linea) {
	venta := &documento.Venta{
		Tipo:  documento.TipoBoleta,
		Folio: "000042",
		Fecha: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
		Total: decimal.NewFromInt(17_970),
		Cliente: &documento.ClienteSnapshot{
			Nombre: "Constructora Andes Ltda.",
			RUT:    "76.111.222-3",
		},
	}
	emisor := documento.Emisor{
		Nombre:  "Comercial Demo SpA",
		RUT:     "76.543.210-K",
		LogoURL: "https://cdn.example.com/logo.png",
	}
	lineas := []documento.Linea{
		{Descripcion: "Cemento 25kg", Cantidad: decimal.NewFromInt(3), PrecioUnitario: decimal.NewFromInt(5_990)},
	}
	return venta, emisor, lineas
}

// ──────────────────────────────────────────────────────────────────────────────
// El fallo del logo jamás aborta el documento: un solo intento, se registra
// y el PDF sale sin imagen.
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerarVenta_LogoCaidoNoAbortaElDocumento(t *testing.T) {
	logos := &logoCaido{}
	g := pdf.NewGenerador(logos, testLogger())
	venta, emisor, lineas := ventaDeEjemplo()

	b, err := g.GenerarVenta(context.Background(), venta, emisor, lineas)

	require.NoError(t, err, "el documento debe generarse aunque el logo falle")
	require.NotEmpty(t, b)
	assert.Equal(t, "%PDF", string(b[:4]), "la salida debe ser un PDF válido")
	assert.Equal(t, 1, logos.llamadas, "un solo intento de fetch, sin reintentos")
}

func TestGenerarVenta_LogoNoDecodificableNoAbortaElDocumento(t *testing.T) {
	// La descarga responde 200 pero el cuerpo no es una imagen: el fallo de
	// decodificación se traga igual que el de red y el PDF sale sin logo.
	g := pdf.NewGenerador(&logoBasura{}, testLogger())
	venta, emisor, lineas := ventaDeEjemplo()

	b, err := g.GenerarVenta(context.Background(), venta, emisor, lineas)

	require.NoError(t, err, "bytes no decodificables no deben abortar el documento")
	require.NotEmpty(t, b)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerarVenta_SinBuscadorDeLogos(t *testing.T) {
	g := pdf.NewGenerador(nil, testLogger())
	venta, emisor, lineas := ventaDeEjemplo()

	b, err := g.GenerarVenta(context.Background(), venta, emisor, lineas)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerarVenta_SinLogoURLNoLlamaAlFetcher(t *testing.T) {
	logos := &logoCaido{}
	g := pdf.NewGenerador(logos, testLogger())
	venta, emisor, lineas := ventaDeEjemplo()
	emisor.LogoURL = ""

	_, err := g.GenerarVenta(context.Background(), venta, emisor, lineas)

	require.NoError(t, err)
	assert.Zero(t, logos.llamadas, "sin URL no hay nada que descargar")
}

func TestGenerarVenta_EmisorYClienteVacios(t *testing.T) {
	// Todos los campos de texto ausentes: el documento sale con placeholders
	g := pdf.NewGenerador(nil, testLogger())
	venta := &documento.Venta{
		Tipo:  documento.TipoCotizacion,
		Fecha: time.Now(),
		Total: decimal.NewFromInt(1_000),
	}

	b, err := g.GenerarVenta(context.Background(), venta, documento.Emisor{}, nil)

	require.NoError(t, err, "datos faltantes se imprimen como placeholder, no abortan")
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerarLiquidacion_ProducePDF(t *testing.T) {
	g := pdf.NewGenerador(nil, testLogger())
	liq := &documento.Liquidacion{
		Periodo:    time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		SueldoBase: decimal.NewFromInt(500_000),
		Bonos: []documento.ItemLiquidacion{
			{Concepto: "Bono de producción", Monto: decimal.NewFromInt(50_000)},
		},
		Descuentos: []documento.ItemLiquidacion{
			{Concepto: "Anticipo", Monto: decimal.NewFromInt(20_000)},
		},
	}
	empleado := documento.EmpleadoSnapshot{
		NombreCompleto: "José Pérez",
		RUT:            "12.345.678-9",
		Cargo:          "Maestro carpintero",
	}

	b, err := g.GenerarLiquidacion(context.Background(), liq, empleado, documento.Emisor{
		Nombre: "Comercial Demo SpA",
		RUT:    "76.543.210-K",
	})

	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.Equal(t, "%PDF", string(b[:4]))
}
