// Package pdf implementa la representación gráfica imprimible de los
// documentos fiscales emitidos bajo CAI (factura, nota de crédito, nota de
// débito).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor + RTN  │  Tipo + Correlativo + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CAI: código, rango autorizado, fecha límite de emisión     │
//	│  CLIENTE: Nombre + RTN                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Desc | ISV% | Total   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Gravado / Exento / ISV 15 / ISV 18 / TOTAL        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Leyenda fiscal SAR                                         │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tallerpro/taller-api/internal/application/facturacion"
	"github.com/tallerpro/taller-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 12, Green: 60, Blue: 96}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ facturacion.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa facturacion.DocumentPDFGenerator usando
// Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateDocumentPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDocumentPDF(
	_ context.Context,
	doc *entity.Document,
	cai *entity.CAI,
	lines []*entity.DocumentLine,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(tipoLabel(doc.Tipo)+" "+doc.Correlativo, true).
		WithAuthor(doc.EmisorNombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(caiRow(cai))
	m.AddRows(clienteRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc))

	if doc.Estado == entity.DocumentStatusAnulada {
		m.AddRows(anuladoRow())
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(leyendaRows()...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func tipoLabel(tipo string) string {
	switch tipo {
	case entity.DocTipoNotaCredito:
		return "NOTA DE CRÉDITO"
	case entity.DocTipoNotaDebito:
		return "NOTA DE DÉBITO"
	default:
		return "FACTURA"
	}
}

// headerRow: emisor + RTN (izq) y tipo + correlativo + fecha (der).
func headerRow(doc *entity.Document) core.Row {
	fecha := doc.FechaEmision.Format("02/01/2006")

	return row.New(20).Add(
		col.New(7).Add(
			text.New(doc.EmisorNombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RTN: "+doc.EmisorRTN, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(nonEmpty(doc.EmisorDireccion, "—"), props.Text{
				Size: 8, Top: 15, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(tipoLabel(doc.Tipo), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Correlativo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8,
			}),
			text.New("Fecha de emisión: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
	)
}

// caiRow: datos de la autorización fiscal. Código, rango autorizado y fecha
// límite van en la cara impresa del documento.
func caiRow(cai *entity.CAI) core.Row {
	rango := fmt.Sprintf("Del %s al %s",
		fmtSecuencia(cai, cai.RangoDesde), fmtSecuencia(cai, cai.RangoHasta))
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CAI: "+cai.Codigo, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Rango autorizado: %s   |   Fecha límite de emisión: %s",
				rango, cai.FechaLimite.Format("02/01/2006"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func fmtSecuencia(cai *entity.CAI, n int64) string {
	return fmt.Sprintf("%s-%s-%s-%08d", cai.Establecimiento, cai.PuntoEmision, cai.TipoDocumento, n)
}

// clienteRow: datos del cliente (RTN opcional, consumidor final sin RTN).
func clienteRow(doc *entity.Document) core.Row {
	return row.New(13).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(doc.ClienteNombre, "Consumidor final"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("RTN: "+nonEmpty(doc.ClienteRTN, "—"), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Desc.", 1, align.Right),
		h("ISV%", 1, align.Center),
		h("Total", 2, align.Right),
	)
}

func tableDetailRows(lines []*entity.DocumentLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				l.Cantidad.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Descripcion,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"L "+l.PrecioUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.Descuento.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.TasaISV.StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"L "+l.TotalLinea.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: desglose fiscal alineado a la derecha (lempiras).
func totalsRow(doc *entity.Document) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(34).Add(
		col.New(4),
		col.New(4).Add(
			label("Importe gravado:"),
			label("Importe exento:"),
			label("ISV 15%:"),
			label("ISV 18%:"),
			grandLabel("TOTAL A PAGAR:"),
		),
		col.New(4).Add(
			value("L "+doc.Gravado.StringFixed(2)),
			value("L "+doc.Exento.StringFixed(2)),
			value("L "+doc.ISV15.StringFixed(2)),
			value("L "+doc.ISV18.StringFixed(2)),
			grandValue("L "+doc.Total.StringFixed(2)),
		),
	)
}

func anuladoRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("*** DOCUMENTO ANULADO ***", props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Center,
			Color: colorRed, Top: 2,
		}),
	))
}

func leyendaRows() []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("La factura es beneficio de todos, exíjala.", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Original: cliente  |  Copia: emisor. Documento emitido bajo el "+
					"Régimen de Facturación de la SAR. Conserve este documento como "+
					"soporte fiscal.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
