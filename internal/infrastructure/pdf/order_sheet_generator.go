// Package pdf genera la hoja de pedido imprimible de una lista de compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Restaurante  │  Correlativo + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Unidad | Cant | P.Unit | Subtotal        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	│  Notas                                                      │
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

	"github.com/jhoicas/Compras-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// OrderSheetGenerator genera la hoja de pedido usando Maroto v2.
type OrderSheetGenerator struct{}

// NewOrderSheetGenerator construye el generador.
func NewOrderSheetGenerator() *OrderSheetGenerator { return &OrderSheetGenerator{} }

// Generate genera el PDF de la lista y devuelve sus bytes. Sirve tanto para
// borradores (sin correlativo) como para listas finales.
func (g *OrderSheetGenerator) Generate(_ context.Context, list *dto.RenderableList) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de compra", true).
		WithAuthor(list.Restaurant, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(list))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, l := range list.Lines {
		m.AddRows(lineRow(l))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(list))

	if list.Notes != "" {
		m.AddRows(line.NewRow(2))
		m.AddRows(notesRow(list.Notes))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: restaurante (izq) y correlativo + fecha (der).
func headerRow(list *dto.RenderableList) core.Row {
	code := list.SeriesCode
	if code == "" {
		code = "BORRADOR"
	}
	fecha := list.CreatedAt.Format("02/01/2006")
	if list.FinalizedAt != nil {
		fecha = list.FinalizedAt.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(list.Restaurant, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Lista de compra", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(code, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right}
	return row.New(7).Add(
		col.New(5).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Unidad", header)),
		col.New(1).Add(text.New("Cant.", headerRight)),
		col.New(2).Add(text.New("P. Unit S/", headerRight)),
		col.New(2).Add(text.New("Subtotal S/", headerRight)),
	)
}

// lineRow: una línea de la lista. En unidades monetarias la cantidad ya es el
// importe, así que la columna de precio unitario va vacía.
func lineRow(l dto.RenderableLine) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := props.Text{Size: 8, Top: 1, Align: align.Right}

	price := "—"
	if !l.IsCurrency && l.Price != nil {
		price = l.Price.StringFixed(2)
	}

	return row.New(6).Add(
		col.New(5).Add(text.New(l.Product, cell)),
		col.New(2).Add(text.New(l.UnitLabel, cell)),
		col.New(1).Add(text.New(l.Qty.String(), cellRight)),
		col.New(2).Add(text.New(price, cellRight)),
		col.New(2).Add(text.New(l.Subtotal.StringFixed(2), cellRight)),
	)
}

func totalRow(list *dto.RenderableList) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL S/", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
		col.New(2).Add(text.New(list.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
		})),
	)
}

func notesRow(notes string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("NOTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}
