// Package pdf implementa la representación gráfica de los documentos del
// sistema usando Maroto v2.
//
// Layout de la página A4 (documento comercial):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo + Identidad empresa  │  Recuadro: título,      │
//	│                                    │  folio y fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FACTURAR A: snapshot del cliente                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit neto | Neto | IVA | Total│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Neto / Descuento / IVA / TOTAL A PAGAR             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación + identidad del emisor        │
//	└─────────────────────────────────────────────────────────────┘
//
// Los montos de cabecera se recalculan desde el total declarado; los de cada
// línea se desglosan por línea. Pueden diferir por redondeo y se imprimen
// ambos tal cual (ver internal/domain/documento).
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
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

	"github.com/gestionpyme/erp-api/internal/domain/documento"
	"github.com/gestionpyme/erp-api/pkg/logger"
)

// ── Paleta de colores corporativa ─────────────────────────────────────────────

var (
	colorPrimario  = &props.Color{Red: 0, Green: 160, Blue: 220}
	colorGris      = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorOscuro    = &props.Color{Red: 60, Green: 60, Blue: 60}
	colorBlanco    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorClaro     = &props.Color{Red: 245, Green: 245, Blue: 245}
	colorDestacado = &props.Color{Red: 240, Green: 248, Blue: 255}
	colorBorde     = &props.Color{Red: 200, Green: 200, Blue: 200}
)

// ── Generador ─────────────────────────────────────────────────────────────────

// Generador implementa documentos.GeneradorPDF usando Maroto v2.
type Generador struct {
	logos BuscadorLogo
	log   *logger.Logger
}

// NewGenerador construye el generador. logos puede ser nil si la instalación
// no usa logo (los documentos salen sin imagen).
func NewGenerador(logos BuscadorLogo, log *logger.Logger) *Generador {
	return &Generador{logos: logos, log: log}
}

// GenerarVenta genera el PDF de una boleta, factura o cotización y devuelve
// sus bytes. La descarga del logo es el único paso remoto: se espera antes de
// armar el encabezado (la posición del texto depende de si hay imagen) y su
// fallo se registra y se ignora.
func (g *Generador) GenerarVenta(
	ctx context.Context,
	venta *documento.Venta,
	emisor documento.Emisor,
	lineas []documento.Linea,
) ([]byte, error) {
	titulo := venta.Tipo.Titulo()

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		WithAuthor(valorODefecto(emisor.Nombre, documento.SinNombreEmpresa), true).
		Build()

	m := maroto.New(cfg)

	logo := g.cargarLogo(ctx, emisor.LogoURL)

	// Encabezado + recuadro de identificación del documento
	m.AddRows(filaEncabezado(venta, emisor, logo, titulo))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimario, Thickness: 0.8}))

	// Cliente (snapshot o mostrador)
	m.AddRows(filaCliente(venta.Cliente))

	// Tabla de detalle: desglose neto/IVA por línea, de abajo hacia arriba
	m.AddRows(filaCabeceraTabla())
	for _, l := range lineas {
		m.AddRows(filaLinea(documento.CalcularLinea(l)))
	}

	// Totales: recalculados de arriba hacia abajo desde el total declarado
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	for _, r := range filasTotales(documento.CalcularTotales(venta.Total)) {
		m.AddRows(r)
	}

	// Términos + pie
	m.AddRows(filaTerminos())
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorBorde, Thickness: 0.3}))
	m.AddRows(filaPie(emisor))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// cargarLogo hace el único fetch remoto del flujo. Cualquier fallo, de
// descarga o de decodificación, se traga: el documento debe salir igual,
// sin logo.
func (g *Generador) cargarLogo(ctx context.Context, url string) []byte {
	if url == "" || g.logos == nil {
		return nil
	}
	b, err := g.logos.Obtener(ctx, url)
	if err != nil {
		g.log.Warn().Err(err).Str("logo_url", url).
			Msg("no se pudo cargar el logo; el documento continúa sin él")
		return nil
	}
	if err := validarLogo(b); err != nil {
		g.log.Warn().Err(err).Str("logo_url", url).
			Msg("el logo descargado no es una imagen válida; el documento continúa sin él")
		return nil
	}
	return b
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// filaEncabezado: logo + identidad del emisor (izq) y recuadro con título,
// folio y fecha (der). Si hay logo el texto se corre una columna.
func filaEncabezado(venta *documento.Venta, emisor documento.Emisor, logo []byte, titulo string) core.Row {
	identidad := []core.Component{
		text.New(valorODefecto(emisor.Nombre, documento.SinNombreEmpresa), props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorOscuro, Top: 1,
		}),
		text.New("RUT: "+valorODefecto(emisor.RUT, documento.SinRUT), props.Text{
			Size: 8.5, Top: 9, Color: colorGris,
		}),
		text.New(valorODefecto(emisor.Direccion, documento.SinDireccion), props.Text{
			Size: 8.5, Top: 14, Color: colorGris,
		}),
		text.New(fmt.Sprintf("Tel: %s | %s",
			valorODefecto(emisor.Telefono, documento.SinTelefono), emisor.Email,
		), props.Text{Size: 8.5, Top: 19, Color: colorGris}),
		text.New(valorODefecto(emisor.Giro, documento.SinGiro), props.Text{
			Size: 8.5, Top: 24, Color: colorGris,
		}),
	}

	cols := make([]core.Col, 0, 3)
	if logo != nil {
		cols = append(cols,
			col.New(2).Add(image.NewFromBytes(logo, extensionLogo(logo), props.Rect{
				Center:  true,
				Percent: 90,
			})),
			col.New(5).Add(identidad...),
		)
	} else {
		cols = append(cols, col.New(7).Add(identidad...))
	}

	folio := documento.Folio(venta.Tipo, venta.Folio, venta.FolioManual)
	cols = append(cols, col.New(5).Add(
		text.New("R.U.T.: "+valorODefecto(emisor.RUT, "99.999.999-9"), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center,
			Color: colorPrimario, Top: 3,
		}),
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Center,
			Color: colorPrimario, Top: 10,
		}),
		text.New("Nº "+folio, props.Text{
			Size: 10, Align: align.Center, Top: 17,
		}),
		text.New("FECHA: "+venta.Fecha.Format("02-01-2006"), props.Text{
			Size: 8.5, Align: align.Center, Top: 24, Color: colorGris,
		}),
	).WithStyle(&props.Cell{
		BackgroundColor: colorClaro,
		BorderColor:     colorBorde,
		BorderType:      border.Full,
		BorderThickness: 0.3,
	}))

	return row.New(32).Add(cols...)
}

// filaCliente: snapshot del comprador, o mostrador si la venta no tiene
// cliente asociado. Los campos ausentes se imprimen con placeholder.
func filaCliente(cliente *documento.ClienteSnapshot) core.Row {
	c := documento.ClienteSnapshot{}
	if cliente != nil {
		c = *cliente
	}
	return row.New(22).Add(
		col.New(7).Add(
			text.New("FACTURAR A:", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimario, Top: 2,
			}),
			text.New(valorODefecto(c.Nombre, documento.ClienteMostrador), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 8,
			}),
			text.New("RUT: "+valorODefecto(c.RUT, documento.SinRUTCliente), props.Text{
				Size: 8.5, Top: 14, Color: colorOscuro,
			}),
		),
		col.New(5).Add(
			text.New("Dirección: "+valorODefecto(c.Direccion, documento.SinCiudad), props.Text{
				Size: 8.5, Top: 8, Color: colorOscuro,
			}),
			text.New(telefonoCliente(c.Telefono), props.Text{
				Size: 8.5, Top: 14, Color: colorOscuro,
			}),
		),
	).WithStyle(&props.Cell{BackgroundColor: colorClaro})
}

// telefonoCliente: el teléfono del cliente es opcional y se omite si falta
// (es el único campo que el documento original no rellenaba).
func telefonoCliente(tel string) string {
	if tel == "" {
		return ""
	}
	return "Tel: " + tel
}

// filaCabeceraTabla: cabecera de la tabla de detalle con fondo corporativo.
func filaCabeceraTabla() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorBlanco, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("CANT.", 1, align.Center),
		h("DESCRIPCIÓN", 4, align.Left),
		h("P. UNIT (NETO)", 2, align.Right),
		h("TOTAL NETO", 2, align.Right),
		h("IVA (19%)", 1, align.Right),
		h("TOTAL", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimario})
}

// filaLinea: una fila de la tabla por línea de venta. Montos a la derecha;
// el total bruto en negrita.
func filaLinea(l documento.LineaCalculada) core.Row {
	monto := func(size int, v string, estilo fontstyle.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{
			Size: 8, Align: align.Right, Top: 1.5, Right: 1, Style: estilo,
		}))
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(l.Cantidad.StringFixed(0), props.Text{
			Size: 8, Align: align.Center, Top: 1.5,
		})),
		col.New(4).Add(text.New(l.Descripcion, props.Text{
			Size: 8, Align: align.Left, Top: 1.5, Left: 1,
		})),
		monto(2, formatearPesos(l.PrecioNeto), fontstyle.Normal),
		monto(2, formatearPesos(l.TotalNeto), fontstyle.Normal),
		monto(1, formatearPesos(l.TotalIVA), fontstyle.Normal),
		monto(2, formatearPesos(l.TotalBruto), fontstyle.Bold),
	).WithStyle(&props.Cell{
		BorderColor:     colorBorde,
		BorderType:      border.Full,
		BorderThickness: 0.2,
	})
}

// filasTotales: bloque de resumen alineado a la derecha. El descuento es una
// fila reservada (hoy siempre $ 0). El total a pagar va destacado con fondo.
func filasTotales(t documento.Totales) []core.Row {
	fila := func(label, valor string) core.Row {
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorGris, Top: 1, Right: 2,
			})),
			col.New(3).Add(text.New(valor, props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
		)
	}
	return []core.Row{
		fila("SUBTOTAL NETO", formatearPesos(t.Neto)),
		fila("DESCUENTO", formatearPesos(t.Descuento)),
		fila("IVA (19%)", formatearPesos(t.IVA)),
		row.New(11).Add(
			col.New(6),
			col.New(3).Add(text.New("TOTAL A PAGAR", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimario, Top: 2, Right: 2,
			})),
			col.New(3).Add(text.New(formatearPesos(t.Total), props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right,
				Color: colorPrimario, Top: 2, Right: 1,
			})).WithStyle(&props.Cell{BackgroundColor: colorDestacado}),
		),
	}
}

// filaTerminos: condiciones comerciales fijas.
func filaTerminos() core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New("Términos e Instrucciones:", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimario, Top: 2,
			}),
			text.New("Forma de pago: Contado / Transferencia.", props.Text{
				Size: 8, Top: 8, Color: colorGris,
			}),
			text.New("Garantía según boleta. Gracias por su preferencia.", props.Text{
				Size: 8, Top: 12, Color: colorGris,
			}),
		),
	)
}

// filaPie: leyenda de generación + recap del emisor.
func filaPie(emisor documento.Emisor) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Documento generado electrónicamente", props.Text{
				Style: fontstyle.Italic, Size: 8, Align: align.Center,
				Color: colorGris, Top: 1,
			}),
			text.New(fmt.Sprintf("%s - %s",
				valorODefecto(emisor.Nombre, documento.SinNombreEmpresa), emisor.Email,
			), props.Text{
				Style: fontstyle.Italic, Size: 8, Align: align.Center,
				Color: colorGris, Top: 6,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func valorODefecto(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
