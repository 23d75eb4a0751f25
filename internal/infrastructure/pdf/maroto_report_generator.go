// Package pdf renderiza el reporte de ventas por producto como PDF descargable
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período del reporte                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Unidades | Ingresos | Ganancia  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades / ingresos / ganancia del período        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reventa-api/internal/application/dto"
	"github.com/jhoicas/reventa-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.SalesReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

var _ reports.SalesReportPDFGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReportPDF(
	_ context.Context,
	from, to time.Time,
	rows []dto.ProductSalesDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas por producto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período del reporte (der).
func headerRow(from, to time.Time) core.Row {
	periodo := fmt.Sprintf("%s — %s", from.Format("02/01/2006"), to.Format("02/01/2006"))

	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ventas y ganancia por producto", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodo, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del reporte.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Unidades", 2, align.Right),
		h("Ingresos", 2, align.Right),
		h("Ganancia", 2, align.Right),
	)
}

// tableDetailRows: una fila por producto vendido en el período.
func tableDetailRows(rows []dto.ProductSalesDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				r.ProductCode,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				r.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", r.UnitsSold),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+r.Revenue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+r.Profit.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: totales del período alineados con las columnas de la tabla.
func totalsRow(rows []dto.ProductSalesDTO) core.Row {
	var units int64
	revenue := decimal.Zero
	profit := decimal.Zero
	for _, r := range rows {
		units += r.UnitsSold
		revenue = revenue.Add(r.Revenue)
		profit = profit.Add(r.Profit)
	}

	total := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Top: 1, Right: 1,
		})
	}

	return row.New(8).Add(
		col.New(2),
		col.New(4).Add(text.New("TOTAL DEL PERÍODO", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1, Left: 1,
		})),
		col.New(2).Add(total(fmt.Sprintf("%d", units))),
		col.New(2).Add(total("$"+revenue.StringFixed(2))),
		col.New(2).Add(total("$"+profit.StringFixed(2))),
	)
}
