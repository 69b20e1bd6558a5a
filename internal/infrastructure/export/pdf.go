package export

import (
	"fmt"
	"strconv"

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

	"github.com/jhoicas/reportes-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ReportExporter = (*PDFExporter)(nil)

// PDFExporter genera la versión PDF del reporte usando Maroto v2: título,
// grilla de métricas clave, serie mensual y tablas de productos/categorías.
type PDFExporter struct{}

// NewPDFExporter construye el exportador PDF.
func NewPDFExporter() *PDFExporter { return &PDFExporter{} }

func (e *PDFExporter) ContentType() string { return "application/pdf" }

func (e *PDFExporter) FileExt() string { return "pdf" }

// Export serializa el reporte a bytes PDF.
func (e *PDFExporter) Export(report *dto.BusinessReportDTO, reportType string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(reportTitle(reportType), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(report, reportType))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(metricsRows(report.KeyMetrics)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(report.MonthlySales) > 0 {
		m.AddRows(sectionTitle("Ventas mensuales"))
		m.AddRows(monthlyHeaderRow())
		for _, b := range report.MonthlySales {
			m.AddRows(monthlyRow(b))
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	if len(report.TopProducts) > 0 {
		m.AddRows(sectionTitle("Productos más vendidos"))
		for _, p := range report.TopProducts {
			m.AddRows(row.New(5).Add(
				col.New(5).Add(text.New(p.Name, props.Text{Size: 8})),
				col.New(3).Add(text.New(p.Category, props.Text{Size: 8, Color: colorGray})),
				col.New(2).Add(text.New(p.Quantity.String(), props.Text{Size: 8, Align: align.Right})),
				col.New(2).Add(text.New(formatMoney(p.Revenue), props.Text{Size: 8, Align: align.Right})),
			))
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	if len(report.CategorySales) > 0 {
		m.AddRows(sectionTitle("Ventas por categoría"))
		for _, c := range report.CategorySales {
			m.AddRows(row.New(5).Add(
				col.New(6).Add(text.New(c.Category, props.Text{Size: 8})),
				col.New(3).Add(text.New(formatMoney(c.Sales), props.Text{Size: 8, Align: align.Right})),
				col.New(3).Add(text.New(strconv.Itoa(c.Percent)+" %", props.Text{Size: 8, Align: align.Right})),
			))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(report *dto.BusinessReportDTO, reportType string) core.Row {
	subtitle := fmt.Sprintf("Año %d — generado %s", report.Year, report.GeneratedAt.Format("02/01/2006 15:04"))
	return row.New(14).Add(
		col.New(12).Add(
			text.New(reportTitle(reportType), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		})),
	)
}

func metricsRows(m dto.KeyMetricsDTO) []core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray}),
			text.New(value, props.Text{Size: 10, Style: fontstyle.Bold, Top: 3.5}),
		)
	}
	return []core.Row{
		row.New(11).Add(
			cell("Ventas del mes", formatMoney(m.TotalSales)),
			cell("Crecimiento", m.GrowthPct.String()+" %"),
			cell("Pedidos", strconv.Itoa(m.CompletedOrders)),
			cell("Ticket promedio", formatMoney(m.AverageTicket)),
		),
		row.New(11).Add(
			cell("Margen de utilidad", m.ProfitMarginPct.String()+" %"),
			cell("Conversión", m.ConversionRatePct.String()+" %"),
			cell("Clientes nuevos", strconv.Itoa(m.NewCustomers)),
			cell("Clientes recurrentes", strconv.Itoa(m.ReturningCustomers)),
		),
	}
}

func monthlyHeaderRow() core.Row {
	header := func(size int, title string, al align.Type) core.Col {
		return col.New(size).Add(text.New(title, props.Text{
			Size: 8, Style: fontstyle.Bold, Align: al,
		}))
	}
	return row.New(6).Add(
		header(2, "Mes", align.Left),
		header(3, "Ventas", align.Right),
		header(3, "Costo", align.Right),
		header(1, "Pedidos", align.Right),
		header(3, "Utilidad", align.Right),
	)
}

func monthlyRow(b dto.MonthlyBucketDTO) core.Row {
	return row.New(5).Add(
		col.New(2).Add(text.New(b.Month, props.Text{Size: 8})),
		col.New(3).Add(text.New(formatMoney(b.Sales), props.Text{Size: 8, Align: align.Right})),
		col.New(3).Add(text.New(formatMoney(b.Cost), props.Text{Size: 8, Align: align.Right})),
		col.New(1).Add(text.New(strconv.Itoa(b.Orders), props.Text{Size: 8, Align: align.Right})),
		col.New(3).Add(text.New(formatMoney(b.Profit), props.Text{Size: 8, Align: align.Right})),
	)
}
