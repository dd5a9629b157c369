package documento_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestionpyme/erp-api/internal/domain/documento"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestDesglosarIVA valida el desglose bruto -> neto + IVA con IVA chileno 19%.
//
// El IVA nunca se calcula por separado: es siempre el residuo contra el neto
// redondeado, de modo que neto + iva == bruto exacto en todos los casos.
//
// Vector de referencia:
//
//	bruto = 119.000  ->  neto = round(119000 / 1.19) = 100.000
//	                     iva  = 119000 - 100000     =  19.000
// ──────────────────────────────────────────────────────────────────────────────

func TestDesglosarIVA_VectorExacto(t *testing.T) {
	neto, iva := documento.DesglosarIVA(decimal.NewFromInt(119_000))

	assert.True(t, neto.Equal(decimal.NewFromInt(100_000)),
		"neto esperado 100000, obtenido %s", neto)
	assert.True(t, iva.Equal(decimal.NewFromInt(19_000)),
		"iva esperado 19000, obtenido %s", iva)
}

func TestDesglosarIVA_RedondeoHaciaAbajo(t *testing.T) {
	// 100 / 1.19 = 84,0336... -> 84; el IVA absorbe la diferencia
	neto, iva := documento.DesglosarIVA(decimal.NewFromInt(100))

	assert.True(t, neto.Equal(decimal.NewFromInt(84)), "neto esperado 84, obtenido %s", neto)
	assert.True(t, iva.Equal(decimal.NewFromInt(16)), "iva esperado 16, obtenido %s", iva)
}

func TestDesglosarIVA_MitadRedondeaHaciaArriba(t *testing.T) {
	// 118,405 / 1,19 = 99,5 exacto: la mitad redondea hacia arriba
	neto, iva := documento.DesglosarIVA(decimal.RequireFromString("118.405"))

	assert.True(t, neto.Equal(decimal.NewFromInt(100)), "neto esperado 100, obtenido %s", neto)
	assert.True(t, iva.Equal(decimal.RequireFromString("18.405")), "iva esperado 18.405, obtenido %s", iva)
}

// TestDesglosarIVA_ResiduoSiempreCuadra verifica la propiedad central del
// desglose: neto + iva == bruto para cualquier monto, aunque la división no
// sea exacta.
func TestDesglosarIVA_ResiduoSiempreCuadra(t *testing.T) {
	brutos := []int64{0, 1, 7, 99, 100, 119, 990, 12_345, 119_000, 1_190_000, 999_999_999}

	for _, b := range brutos {
		bruto := decimal.NewFromInt(b)
		neto, iva := documento.DesglosarIVA(bruto)

		require.True(t, neto.Add(iva).Equal(bruto),
			"bruto %d: neto %s + iva %s debe ser igual al bruto", b, neto, iva)
	}
}

func TestDesglosarIVA_Cero(t *testing.T) {
	neto, iva := documento.DesglosarIVA(decimal.Zero)

	assert.True(t, neto.IsZero(), "neto de bruto 0 debe ser 0")
	assert.True(t, iva.IsZero(), "iva de bruto 0 debe ser 0")
}
