// Package pdf genera el resumen del CRM en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app        │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Clientes | Pedidos | Ingresos                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Pedido | Cliente | Productos | Total        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

	"github.com/jhoicas/crm-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// SummaryPDFGenerator genera el resumen del CRM usando Maroto v2.
type SummaryPDFGenerator struct {
	appName string
}

// NewSummaryPDFGenerator construye el generador; appName va en la cabecera.
func NewSummaryPDFGenerator(appName string) *SummaryPDFGenerator {
	return &SummaryPDFGenerator{appName: appName}
}

// GenerateSummaryPDF genera el PDF y devuelve sus bytes.
func (g *SummaryPDFGenerator) GenerateSummaryPDF(_ context.Context, report *dto.SummaryReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("CRM summary", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statsRow(report.Stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(report.RecentOrders) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No orders yet.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(orderRows(report.RecentOrders)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(appName string, report *dto.SummaryReport) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(appName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("CRM summary", props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Generated: "+report.GeneratedAt.Format("2006-01-02 15:04 MST"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func statsRow(s dto.StatsResponse) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: colorPrimary, Top: 6}),
		)
	}
	return row.New(16).Add(
		cell("Customers", strconv.Itoa(s.TotalCustomers)),
		cell("Orders", strconv.Itoa(s.TotalOrders)),
		cell("Revenue", FormatMoney(s.TotalRevenue)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Order", 3, align.Left),
		h("Customer", 3, align.Left),
		h("Products", 2, align.Center),
		h("Total", 2, align.Right),
	)
}

func orderRows(orders []dto.OrderResponse) []core.Row {
	result := make([]core.Row, 0, len(orders))
	for _, o := range orders {
		customer := "—"
		if o.Customer != nil {
			customer = o.Customer.Email
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(o.OrderDate.Format("2006-01-02"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(shortID(o.ID), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(customer, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(len(o.Products)), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(FormatMoney(o.TotalAmount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// FormatMoney "$1,234.50": separador de miles con coma y dos decimales.
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + "$" + string(buf) + "." + frac
}

// shortID primeros 8 caracteres del UUID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
