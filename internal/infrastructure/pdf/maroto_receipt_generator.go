// Package pdf implementa la versión imprimible del recibo de venta.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: VentaFacil  │  N° Pedido + Fecha      │
//	│  ───────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Teléfono + Atendió          │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total       │
//	│  ───────────────────────────────────────────  │
//	│  TOTAL A PAGAR                                 │
//	└───────────────────────────────────────────────┘
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

	"github.com/dakny/ventafacil-api/internal/application/receipt"
	"github.com/dakny/ventafacil-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ receipt.PDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa receipt.PDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	appName string
}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator(appName string) *MarotoReceiptGenerator {
	if appName == "" {
		appName = "VentaFacil"
	}
	return &MarotoReceiptGenerator{appName: appName}
}

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, r *entity.Receipt) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, l := range r.Lines {
		m.AddRows(tableDetailRow(l))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(r))
	m.AddRows(line.NewRow(2))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la aplicación (izq) y N° de pedido + fecha (der).
func (g *MarotoReceiptGenerator) headerRow(r *entity.Receipt) core.Row {
	fecha := r.SettledAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Pedido "+r.OrderID, props.Text{
				Size: 8, Align: align.Right, Top: 2,
			}),
			text.New(fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente y quién atendió.
func customerRow(r *entity.Receipt) core.Row {
	contact := r.CustomerName
	if r.CustomerPhone != "" {
		contact += " · Tel: " + r.CustomerPhone
	}
	atendio := ""
	if r.SettledBy != "" {
		atendio = "Atendió: " + r.SettledBy
	}

	return row.New(12).Add(
		col.New(8).Add(
			text.New("Cliente", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(contact, props.Text{Size: 9, Top: 5}),
		),
		col.New(4).Add(
			text.New(atendio, props.Text{Size: 8, Align: align.Right, Top: 5, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	return row.New(6).Add(
		col.New(2).Add(text.New("Cant", header)),
		col.New(5).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("P. Unit", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right})),
		col.New(3).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right})),
	)
}

func tableDetailRow(l entity.ReceiptLine) core.Row {
	cell := props.Text{Size: 8}
	right := props.Text{Size: 8, Align: align.Right}
	return row.New(5).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", l.Quantity), cell)),
		col.New(5).Add(text.New(l.ProductName, cell)),
		col.New(2).Add(text.New("$"+l.UnitPrice.StringFixed(2), right)),
		col.New(3).Add(text.New("$"+l.LineTotal.StringFixed(2), right)),
	)
}

func totalRow(r *entity.Receipt) core.Row {
	return row.New(8).Add(
		col.New(7),
		col.New(2).Add(
			text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1}),
		),
		col.New(3).Add(
			text.New("$"+r.GrandTotal.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorPrimary,
			}),
		),
	)
}

func footerRow() core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New("¡Gracias por su compra!", props.Text{
				Size: 8, Align: align.Center, Color: colorGray,
			}),
		),
	)
}
