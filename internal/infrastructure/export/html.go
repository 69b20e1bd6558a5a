package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/dto"
)

var _ ReportExporter = (*HTMLExporter)(nil)

// HTMLExporter genera el documento HTML autocontenido que usa la vista para
// imprimir: sin assets externos, con estilos mínimos orientados a papel.
type HTMLExporter struct {
	tmpl *template.Template
}

// NewHTMLExporter construye el exportador y compila la plantilla una sola vez.
func NewHTMLExporter() *HTMLExporter {
	tmpl := template.Must(template.New("report").Funcs(template.FuncMap{
		"money": func(d decimal.Decimal) string { return formatMoney(d) },
	}).Parse(printTemplate))
	return &HTMLExporter{tmpl: tmpl}
}

func (e *HTMLExporter) ContentType() string { return "text/html; charset=utf-8" }

func (e *HTMLExporter) FileExt() string { return "html" }

// Export renderiza la plantilla imprimible con el reporte.
func (e *HTMLExporter) Export(report *dto.BusinessReportDTO, reportType string) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Title  string
		Report *dto.BusinessReportDTO
	}{
		Title:  reportTitle(reportType),
		Report: report,
	}
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("html: renderizar plantilla: %w", err)
	}
	return buf.Bytes(), nil
}

const printTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #222; margin: 2em; }
  h1 { color: #00467F; border-bottom: 2px solid #00467F; padding-bottom: .2em; }
  h2 { color: #00467F; margin-top: 1.4em; }
  table { border-collapse: collapse; width: 100%; margin-top: .5em; }
  th { background: #00467F; color: #fff; text-align: left; padding: .3em .6em; }
  td { border-bottom: 1px solid #ddd; padding: .3em .6em; }
  td.num, th.num { text-align: right; }
  .meta { color: #666; font-size: .9em; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Año {{.Report.Year}} — generado {{.Report.GeneratedAt.Format "02/01/2006 15:04"}}</p>

<h2>Métricas clave</h2>
<table>
  <tr><td>Ventas del mes</td><td class="num">{{money .Report.KeyMetrics.TotalSales}}</td></tr>
  <tr><td>Crecimiento</td><td class="num">{{.Report.KeyMetrics.GrowthPct}} %</td></tr>
  <tr><td>Pedidos completados</td><td class="num">{{.Report.KeyMetrics.CompletedOrders}}</td></tr>
  <tr><td>Ticket promedio</td><td class="num">{{money .Report.KeyMetrics.AverageTicket}}</td></tr>
  <tr><td>Margen de utilidad</td><td class="num">{{.Report.KeyMetrics.ProfitMarginPct}} %</td></tr>
  <tr><td>Tasa de conversión</td><td class="num">{{.Report.KeyMetrics.ConversionRatePct}} %</td></tr>
  <tr><td>Clientes nuevos</td><td class="num">{{.Report.KeyMetrics.NewCustomers}}</td></tr>
  <tr><td>Clientes recurrentes</td><td class="num">{{.Report.KeyMetrics.ReturningCustomers}}</td></tr>
</table>

{{if .Report.MonthlySales}}
<h2>Ventas mensuales</h2>
<table>
  <tr><th>Mes</th><th class="num">Ventas</th><th class="num">Costo</th><th class="num">Pedidos</th><th class="num">Utilidad</th></tr>
  {{range .Report.MonthlySales}}
  <tr><td>{{.Month}}</td><td class="num">{{money .Sales}}</td><td class="num">{{money .Cost}}</td><td class="num">{{.Orders}}</td><td class="num">{{money .Profit}}</td></tr>
  {{end}}
</table>
{{end}}

{{if .Report.TopProducts}}
<h2>Productos más vendidos</h2>
<table>
  <tr><th>Producto</th><th>Categoría</th><th class="num">Cantidad</th><th class="num">Ingreso</th></tr>
  {{range .Report.TopProducts}}
  <tr><td>{{.Name}}</td><td>{{.Category}}</td><td class="num">{{.Quantity}}</td><td class="num">{{money .Revenue}}</td></tr>
  {{end}}
</table>
{{end}}

{{if .Report.CategorySales}}
<h2>Ventas por categoría</h2>
<table>
  <tr><th>Categoría</th><th class="num">Ventas</th><th class="num">Participación</th></tr>
  {{range .Report.CategorySales}}
  <tr><td>{{.Category}}</td><td class="num">{{money .Sales}}</td><td class="num">{{.Percent}} %</td></tr>
  {{end}}
</table>
{{end}}

{{if .Report.ChannelPerformance}}
<h2>Rendimiento por canal</h2>
<table>
  <tr><th>Canal</th><th class="num">Ventas</th><th class="num">Pedidos</th><th class="num">Ticket promedio</th></tr>
  {{range .Report.ChannelPerformance}}
  <tr><td>{{.Channel}}</td><td class="num">{{money .Sales}}</td><td class="num">{{.Orders}}</td><td class="num">{{.AverageTicket}}</td></tr>
  {{end}}
</table>
{{end}}

{{if .Report.InventoryStatus}}
<h2>Estado del inventario</h2>
<table>
  <tr><th>Estado</th><th class="num">Productos</th></tr>
  {{range .Report.InventoryStatus}}
  <tr><td>{{.Label}}</td><td class="num">{{.Count}}</td></tr>
  {{end}}
</table>
{{end}}

{{if .Report.TopCustomers}}
<h2>Mejores clientes</h2>
<table>
  <tr><th>Cliente</th><th class="num">Pedidos</th><th class="num">Gasto acumulado</th></tr>
  {{range .Report.TopCustomers}}
  <tr><td>{{.Name}}</td><td class="num">{{.Orders}}</td><td class="num">{{money .TotalSpent}}</td></tr>
  {{end}}
</table>
{{end}}
</body>
</html>
`
