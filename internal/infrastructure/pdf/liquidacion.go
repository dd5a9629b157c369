package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/gestionpyme/erp-api/internal/domain/documento"
)

// GenerarLiquidacion genera el PDF de una liquidación de sueldo.
//
// Estructura distinta al documento comercial: dos recuadros de identidad en
// paralelo (empleador izquierda, trabajador derecha) y las partidas agrupadas
// en secciones rotuladas (HABERES / DESCUENTOS) en vez de tabla plana. La
// última fila es siempre el líquido a pagar, destacado y recalculado desde
// los componentes al momento del render.
func (g *Generador) GenerarLiquidacion(
	ctx context.Context,
	liq *documento.Liquidacion,
	empleado documento.EmpleadoSnapshot,
	emisor documento.Emisor,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Liquidación de Sueldo", true).
		WithAuthor(valorODefecto(emisor.Nombre, documento.SinNombreEmpresa), true).
		Build()

	m := maroto.New(cfg)

	// Título + período
	m.AddRows(row.New(16).Add(
		col.New(12).Add(
			text.New("LIQUIDACIÓN DE SUELDO", props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: colorPrimario, Top: 1,
			}),
			text.New("Período: "+liq.Periodo.Format("2006-01"), props.Text{
				Size: 10, Align: align.Center, Top: 10, Color: colorGris,
			}),
		),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimario, Thickness: 0.8}))

	// Identidades en paralelo
	m.AddRows(filaIdentidades(empleado, emisor))
	m.AddRows(line.NewRow(3))

	// Sueldo base
	m.AddRows(filaPartida("Sueldo Base", liq.SueldoBase, fontstyle.Bold))

	// Haberes y descuentos como secciones rotuladas
	m.AddRows(filaSeccion("HABERES"))
	for _, b := range liq.Bonos {
		m.AddRows(filaPartida(b.Concepto, b.Monto, fontstyle.Normal))
	}
	m.AddRows(filaSeccion("DESCUENTOS"))
	for _, d := range liq.Descuentos {
		m.AddRows(filaPartida(d.Concepto, d.Monto.Neg(), fontstyle.Normal))
	}

	// Líquido a pagar: única fila calculada, siempre al final y destacada
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(row.New(12).Add(
		col.New(6).Add(text.New("LÍQUIDO A PAGAR", props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Left,
			Color: colorPrimario, Top: 3, Left: 2,
		})),
		col.New(6).Add(text.New(formatearPesos(liq.SueldoLiquido()), props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Right,
			Color: colorPrimario, Top: 3, Right: 2,
		})),
	).WithStyle(&props.Cell{BackgroundColor: colorDestacado}))

	// Pie
	m.AddRows(line.NewRow(6))
	m.AddRows(filaPie(emisor))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar liquidación: %w", err)
	}
	return doc.GetBytes(), nil
}

// filaIdentidades: empleador a la izquierda, trabajador a la derecha.
func filaIdentidades(empleado documento.EmpleadoSnapshot, emisor documento.Emisor) core.Row {
	caja := &props.Cell{
		BackgroundColor: colorClaro,
		BorderColor:     colorBorde,
		BorderType:      border.Full,
		BorderThickness: 0.3,
	}
	return row.New(26).Add(
		col.New(6).Add(
			text.New("EMPLEADOR", props.Text{
				Style: fontstyle.Bold, Size: 8.5, Color: colorPrimario, Top: 2, Left: 2,
			}),
			text.New(valorODefecto(emisor.Nombre, documento.SinNombreEmpresa), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 8, Left: 2,
			}),
			text.New("RUT: "+valorODefecto(emisor.RUT, documento.SinRUT), props.Text{
				Size: 8.5, Top: 14, Left: 2, Color: colorOscuro,
			}),
			text.New(valorODefecto(emisor.Direccion, documento.SinDireccion), props.Text{
				Size: 8.5, Top: 19, Left: 2, Color: colorOscuro,
			}),
		).WithStyle(caja),
		col.New(6).Add(
			text.New("TRABAJADOR", props.Text{
				Style: fontstyle.Bold, Size: 8.5, Color: colorPrimario, Top: 2, Left: 2,
			}),
			text.New(valorODefecto(empleado.NombreCompleto, "Trabajador"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 8, Left: 2,
			}),
			text.New("RUT: "+valorODefecto(empleado.RUT, documento.SinRUT), props.Text{
				Size: 8.5, Top: 14, Left: 2, Color: colorOscuro,
			}),
			text.New("Cargo: "+valorODefecto(empleado.Cargo, "Sin cargo definido"), props.Text{
				Size: 8.5, Top: 19, Left: 2, Color: colorOscuro,
			}),
		).WithStyle(caja),
	)
}

// filaSeccion: rótulo de grupo (HABERES / DESCUENTOS) con fondo corporativo.
func filaSeccion(titulo string) core.Row {
	return row.New(7).Add(
		col.New(12).Add(text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 8.5, Color: colorBlanco, Top: 1.5, Left: 2,
		})),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimario})
}

// filaPartida: una fila concepto/monto formateado en pesos.
func filaPartida(concepto string, monto decimal.Decimal, estilo fontstyle.Type) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(concepto, props.Text{
			Size: 9, Top: 1, Left: 2, Style: estilo,
		})),
		col.New(4).Add(text.New(formatearPesos(monto), props.Text{
			Size: 9, Align: align.Right, Top: 1, Right: 2, Style: estilo,
		})),
	).WithStyle(&props.Cell{
		BorderColor:     colorBorde,
		BorderType:      border.Full,
		BorderThickness: 0.2,
	})
}
