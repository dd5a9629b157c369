package documento_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gestionpyme/erp-api/internal/domain/documento"
)

// SueldoLiquido se recalcula siempre desde los componentes; nunca se confía
// en un total pre-almacenado.

func TestSueldoLiquido_BaseMasBonosMenosDescuentos(t *testing.T) {
	l := documento.Liquidacion{
		SueldoBase: decimal.NewFromInt(500_000),
		Bonos: []documento.ItemLiquidacion{
			{Concepto: "Bono de producción", Monto: decimal.NewFromInt(50_000)},
		},
		Descuentos: []documento.ItemLiquidacion{
			{Concepto: "Anticipo", Monto: decimal.NewFromInt(20_000)},
		},
	}

	assert.True(t, l.SueldoLiquido().Equal(decimal.NewFromInt(530_000)),
		"500000 + 50000 - 20000 = 530000, obtenido %s", l.SueldoLiquido())
}

func TestSueldoLiquido_SinItemsEsElSueldoBase(t *testing.T) {
	l := documento.Liquidacion{SueldoBase: decimal.NewFromInt(750_000)}

	assert.True(t, l.SueldoLiquido().Equal(decimal.NewFromInt(750_000)))
}

func TestSueldoLiquido_VariosItemsSeSumanTodos(t *testing.T) {
	l := documento.Liquidacion{
		SueldoBase: decimal.NewFromInt(600_000),
		Bonos: []documento.ItemLiquidacion{
			{Concepto: "Colación", Monto: decimal.NewFromInt(40_000)},
			{Concepto: "Movilización", Monto: decimal.NewFromInt(30_000)},
		},
		Descuentos: []documento.ItemLiquidacion{
			{Concepto: "AFP", Monto: decimal.NewFromInt(60_000)},
			{Concepto: "Salud", Monto: decimal.NewFromInt(42_000)},
			{Concepto: "Anticipo", Monto: decimal.NewFromInt(100_000)},
		},
	}

	// 600000 + 70000 - 202000 = 468000
	assert.True(t, l.SueldoLiquido().Equal(decimal.NewFromInt(468_000)),
		"líquido esperado 468000, obtenido %s", l.SueldoLiquido())
}
