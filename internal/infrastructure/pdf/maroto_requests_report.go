// Package pdf genera el listado de solicitudes de una cuenta en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Portal + título      │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SOLICITANTE: Nombre + Email + Rol                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Ítems | Estado                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total por estado                                   │
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

	"github.com/jhoicas/portal-rrhh/internal/application/dto"
	"github.com/jhoicas/portal-rrhh/internal/application/report"
	"github.com/jhoicas/portal-rrhh/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}

	statusColors = map[string]*props.Color{
		"warning": {Red: 180, Green: 120, Blue: 0},
		"success": {Red: 25, Green: 135, Blue: 84},
		"danger":  {Red: 200, Green: 35, Blue: 51},
	}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.RequestsPDF = (*RequestsReport)(nil)

// RequestsReport implementa report.RequestsPDF usando Maroto v2.
type RequestsReport struct {
	portalName string
}

// NewRequestsReport construye el generador; portalName aparece en la cabecera.
func NewRequestsReport(portalName string) *RequestsReport {
	return &RequestsReport{portalName: nonEmpty(portalName, "Portal RRHH")}
}

// Render genera el PDF y devuelve sus bytes.
func (g *RequestsReport) Render(
	_ context.Context,
	owner dto.AccountResponse,
	requests []dto.RequestResponse,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("My Requests", true).
		WithAuthor(g.portalName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.portalName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(ownerRow(owner))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(requests) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("You have no requests yet.", props.Text{Size: 9, Top: 3, Color: colorGray}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		m.AddRows(tableDetailRows(requests)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(requests))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del portal y título (izq), fecha de generación (der).
func headerRow(portalName string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(portalName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("My Requests", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generated: "+generatedAt.UTC().Format(entity.DateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// ownerRow: datos de la cuenta dueña de las solicitudes.
func ownerRow(owner dto.AccountResponse) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EMPLOYEE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(owner.DisplayName, owner.Email), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Role: %s", owner.Email, nonEmpty(owner.Role, "—")),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo del color primario.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Type", 2, align.Left),
		h("Items", 6, align.Left),
		h("Status", 2, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por solicitud.
func tableDetailRows(requests []dto.RequestResponse) []core.Row {
	result := make([]core.Row, 0, len(requests))
	for _, r := range requests {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(r.Date, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.Type, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(6).Add(text.New(r.ItemsSummary, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.Status, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1,
				Color: statusColor(r.StatusClass),
			})),
		))
	}
	return result
}

// summaryRow: total de solicitudes y desglose por estado.
func summaryRow(requests []dto.RequestResponse) core.Row {
	counts := map[string]int{}
	for _, r := range requests {
		counts[r.Status]++
	}
	summary := fmt.Sprintf("Total: %d   |   %s: %d   |   %s: %d   |   %s: %d",
		len(requests),
		entity.RequestPending, counts[entity.RequestPending],
		entity.RequestApproved, counts[entity.RequestApproved],
		entity.RequestRejected, counts[entity.RequestRejected],
	)
	return row.New(10).Add(col.New(12).Add(
		text.New(summary, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3, Color: colorPrimary}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusColor(class string) *props.Color {
	if c, ok := statusColors[class]; ok {
		return c
	}
	return colorGray
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
