// Package pdf implementa la hoja de conteo imprimible de una inspección:
// el documento que el bodeguero lleva a la ubicación para registrar a mano
// las cantidades físicas antes de digitarlas.
//
// Layout A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Hoja de conteo │ Ubicación + Orden + Estado        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Paquete | Medicamento | Lote | Esperado | Contado   │
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

	"github.com/avillareal/farmastock-api/internal/application/inventorycheck"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 74}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ inventorycheck.CountSheetGenerator = (*MarotoCountSheetGenerator)(nil)

// MarotoCountSheetGenerator implementa inventorycheck.CountSheetGenerator usando Maroto v2.
type MarotoCountSheetGenerator struct{}

// NewMarotoCountSheetGenerator construye el generador.
func NewMarotoCountSheetGenerator() *MarotoCountSheetGenerator { return &MarotoCountSheetGenerator{} }

// GenerateCountSheet genera el PDF y devuelve sus bytes.
func (g *MarotoCountSheetGenerator) GenerateCountSheet(_ context.Context, sheet *inventorycheck.CountSheetData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de conteo de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range sheet.Rows {
		m.AddRows(detailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(sheet.Rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de conteo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y ubicación + orden + estado (der).
func headerRow(sheet *inventorycheck.CountSheetData) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("Hoja de conteo de inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(6).Add(
			text.New("Ubicación: "+sheet.LocationCode, props.Text{
				Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Orden: "+sheet.OrderID, props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Estado: "+sheet.Status, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(8).Add(
		text.NewCol(4, "Paquete", header),
		text.NewCol(3, "Medicamento", header),
		text.NewCol(2, "Lote", header),
		text.NewCol(2, "Esperado", mergeAlign(header, align.Right)),
		text.NewCol(1, "Contado", mergeAlign(header, align.Right)),
	)
}

func detailRow(r inventorycheck.CountSheetRow) core.Row {
	cell := props.Text{Size: 8}
	return row.New(7).Add(
		text.NewCol(4, r.PackageID, cell),
		text.NewCol(3, r.MedicineName, cell),
		text.NewCol(2, r.BatchCode, cell),
		text.NewCol(2, r.Expected, mergeAlign(cell, align.Right)),
		text.NewCol(1, r.Actual, mergeAlign(cell, align.Right)),
	)
}

func footerRow(total int) core.Row {
	return row.New(7).Add(
		text.NewCol(12, fmt.Sprintf("%d paquetes en esta ubicación. Firma del bodeguero: ______________", total),
			props.Text{Size: 8, Color: colorGray, Top: 2}),
	)
}

func mergeAlign(p props.Text, a align.Type) props.Text {
	p.Align = a
	return p
}
