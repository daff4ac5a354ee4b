// Package pdf genera el relatório de estoque en PDF a partir del panel.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ingrediente | Qtd | Mínima | Validade | Fornecedor  │
//	│         (alertas de la fila debajo, en color)               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTAS: banner consolidado + resumo por tipo              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
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

	"github.com/jhoicas/stockmanager/internal/application/dto"
	"github.com/jhoicas/stockmanager/internal/domain/stock"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 176, Green: 0, Blue: 32}
	colorWarning = &props.Color{Red: 204, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa panel.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title string
}

// NewMarotoReportGenerator construye el generador; title encabeza el documento.
func NewMarotoReportGenerator(title string) *MarotoReportGenerator {
	if title == "" {
		title = "Relatório de Estoque"
	}
	return &MarotoReportGenerator{title: title}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(_ context.Context, view *dto.PanelResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, view))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	for _, r := range view.Rows {
		m.AddRows(tableRows(r)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(alertRows(view)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar relatório: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, view *dto.PanelResponse) core.Row {
	generated := view.GeradoEm
	if t, err := time.Parse(time.RFC3339, view.GeradoEm); err == nil {
		generated = t.Format("02/01/2006 15:04")
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d ingrediente(s)", len(view.Rows)), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Gerado em "+generated, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
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
		h("Ingrediente", 3, align.Left),
		h("Quantidade", 2, align.Right),
		h("Mínima", 2, align.Right),
		h("Validade", 2, align.Center),
		h("Fornecedor", 3, align.Left),
	)
}

// tableRows: la fila del ingrediente y, si tiene alertas, una línea con sus mensajes.
func tableRows(r dto.PanelRowDTO) []core.Row {
	ing := r.Ingrediente
	style := props.Text{Size: 8, Top: 1}
	if len(r.Alertas) > 0 {
		style.Style = fontstyle.Bold
	}
	cell := func(s string, size int, a align.Type) core.Col {
		p := style
		p.Align = a
		p.Left, p.Right = 1, 1
		return col.New(size).Add(text.New(s, p))
	}

	rows := []core.Row{row.New(6).Add(
		cell(ing.Nome, 3, align.Left),
		cell(r.Quantidade, 2, align.Right),
		cell(r.Minima, 2, align.Right),
		cell(formatDate(ing.Validade), 2, align.Center),
		cell(deref(ing.Fornecedor, "-"), 3, align.Left),
	)}

	if len(r.Alertas) > 0 {
		msgs := make([]string, 0, len(r.Alertas))
		color := colorWarning
		for _, a := range r.Alertas {
			msgs = append(msgs, a.Mensagem)
			if a.Severidade != string(stock.SeverityWarning) {
				color = colorDanger
			}
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(strings.Join(msgs, "  |  "), props.Text{Size: 7, Left: 4, Color: color}),
		)))
	}
	return rows
}

func alertRows(view *dto.PanelResponse) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("ALERTAS", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
		)),
	}
	if len(view.Alertas) == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Nenhum alerta de estoque.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	for _, msg := range view.Alertas {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("• "+msg, props.Text{Size: 8, Top: 0.5, Left: 2}),
		)))
	}

	parts := make([]string, 0, len(view.Resumo))
	for _, k := range stock.Kinds() {
		parts = append(parts, fmt.Sprintf("%s: %d", k, view.Resumo[string(k)]))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(strings.Join(parts, "   "), props.Text{Size: 7, Color: colorGray, Top: 3}),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatDate "2026-10-20" -> "20/10/2026".
func formatDate(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	t, err := time.Parse(dto.DateLayout, *s)
	if err != nil {
		return *s
	}
	return t.Format("02/01/2006")
}

func deref(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}
