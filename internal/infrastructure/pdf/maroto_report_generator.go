// Package pdf implementa la generación del reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / stock bajo / agotados / valor total   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Nombre | Categoría | Stock | Mín | Valor      │
//	│         (filas con stock bajo o agotado resaltadas)         │
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

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.InventoryReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.InventoryReportGenerator con Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	items []dto.InventoryViewDTO,
	stats dto.InventoryStatsDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, item := range items {
		m.AddRows(itemRow(item))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// summaryRow: agregados del catálogo en cuatro columnas.
func summaryRow(stats dto.InventoryStatsDTO) core.Row {
	return row.New(12).Add(
		summaryCol("Productos", fmt.Sprintf("%d", stats.TotalProducts), colorPrimary),
		summaryCol("Stock bajo", fmt.Sprintf("%d", stats.LowStock), colorAlert),
		summaryCol("Agotados", fmt.Sprintf("%d", stats.OutOfStock), colorAlert),
		summaryCol("Valor total", formatMoney(stats.TotalValue), colorPrimary),
	)
}

func summaryCol(label, value string, valueColor *props.Color) core.Col {
	return col.New(3).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5, Color: valueColor}),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	headerRight := header
	headerRight.Align = align.Right
	return row.New(7).Add(
		col.New(2).Add(text.New("SKU", header)),
		col.New(4).Add(text.New("Nombre", header)),
		col.New(2).Add(text.New("Categoría", header)),
		col.New(1).Add(text.New("Stock", headerRight)),
		col.New(1).Add(text.New("Mín", headerRight)),
		col.New(2).Add(text.New("Valor", headerRight)),
	)
}

// itemRow: una fila por producto; stock en rojo si está bajo o agotado.
func itemRow(item dto.InventoryViewDTO) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := cell
	cellRight.Align = align.Right
	stockCell := cellRight
	if item.LowStock || item.OutOfStock {
		stockCell.Color = colorAlert
		stockCell.Style = fontstyle.Bold
	}
	value := decimal.NewFromInt(item.Cost).Mul(decimal.NewFromInt(item.Stock))
	return row.New(6).Add(
		col.New(2).Add(text.New(item.SKU, cell)),
		col.New(4).Add(text.New(item.Name, cell)),
		col.New(2).Add(text.New(item.Category, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.Stock), stockCell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.MinStock), cellRight)),
		col.New(2).Add(text.New(formatMoney(value), cellRight)),
	)
}

// formatMoney presenta un monto en unidades menores con separador de miles.
func formatMoney(v decimal.Decimal) string {
	s := v.StringFixed(0)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	if neg {
		return "$ -" + string(out)
	}
	return "$ " + string(out)
}
