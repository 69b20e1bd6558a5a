package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/reportes-api/internal/application/dto"
)

var _ ReportExporter = (*ExcelExporter)(nil)

// ExcelExporter genera un libro .xlsx con una hoja por faceta del reporte.
// Los montos se escriben como valores numéricos con formato de moneda nativo
// de la hoja, no como strings, para que el usuario pueda operar sobre ellos.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador de hoja de cálculo.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelExporter) FileExt() string { return "xlsx" }

// Export serializa el reporte a bytes .xlsx.
func (e *ExcelExporter) Export(report *dto.BusinessReportDTO, reportType string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de moneda: %w", err)
	}

	w := &sheetWriter{f: f, headerStyle: headerStyle, moneyStyle: moneyStyle}

	// Hoja de resumen reemplaza a la hoja por defecto.
	const summary = "Resumen"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, fmt.Errorf("excel: hoja de resumen: %w", err)
	}
	w.writeSummary(summary, report, reportType)

	w.writeMonthly("Ventas mensuales", report.MonthlySales)
	w.writeTopProducts("Top productos", report.TopProducts)
	w.writeCategories("Categorías", report.CategorySales)
	w.writeChannels("Canales", report.ChannelPerformance)
	w.writeInventory("Inventario", report.InventoryStatus)
	w.writeCustomers("Clientes", report.CustomerSegments, report.TopCustomers)

	if w.err != nil {
		return nil, fmt.Errorf("excel: escribir hojas: %w", w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter acumula el primer error para no ensuciar cada celda con checks.
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	moneyStyle  int
	err         error
}

func (w *sheetWriter) set(sheet, cell string, value any) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellValue(sheet, cell, value)
}

func (w *sheetWriter) money(sheet, cell string, d decimal.Decimal) {
	if w.err != nil {
		return
	}
	v, _ := d.Float64()
	if w.err = w.f.SetCellValue(sheet, cell, v); w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(sheet, cell, cell, w.moneyStyle)
}

func (w *sheetWriter) header(sheet string, cells ...string) {
	for i, title := range cells {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		w.set(sheet, cell, title)
		if w.err == nil {
			w.err = w.f.SetCellStyle(sheet, cell, cell, w.headerStyle)
		}
	}
}

func (w *sheetWriter) newSheet(name string) bool {
	if w.err != nil {
		return false
	}
	if _, err := w.f.NewSheet(name); err != nil {
		w.err = err
		return false
	}
	return true
}

func (w *sheetWriter) writeSummary(sheet string, report *dto.BusinessReportDTO, reportType string) {
	w.set(sheet, "A1", reportTitle(reportType))
	w.set(sheet, "A2", fmt.Sprintf("Año %d — generado %s", report.Year, report.GeneratedAt.Format("2006-01-02 15:04")))

	m := report.KeyMetrics
	rows := []struct {
		label string
		value any
		money bool
		dec   decimal.Decimal
	}{
		{label: "Ventas del mes", money: true, dec: m.TotalSales},
		{label: "Crecimiento %", value: m.GrowthPct.InexactFloat64()},
		{label: "Pedidos completados", value: m.CompletedOrders},
		{label: "Ticket promedio", money: true, dec: m.AverageTicket},
		{label: "Margen de utilidad %", value: m.ProfitMarginPct.InexactFloat64()},
		{label: "Tasa de conversión %", value: m.ConversionRatePct.InexactFloat64()},
		{label: "Clientes nuevos", value: m.NewCustomers},
		{label: "Clientes recurrentes", value: m.ReturningCustomers},
	}
	for i, r := range rows {
		row := i + 4
		w.set(sheet, fmt.Sprintf("A%d", row), r.label)
		if r.money {
			w.money(sheet, fmt.Sprintf("B%d", row), r.dec)
		} else {
			w.set(sheet, fmt.Sprintf("B%d", row), r.value)
		}
	}
}

func (w *sheetWriter) writeMonthly(sheet string, buckets []dto.MonthlyBucketDTO) {
	if !w.newSheet(sheet) {
		return
	}
	w.header(sheet, "Mes", "Ventas", "Costo", "Pedidos", "Utilidad")
	for i, b := range buckets {
		row := i + 2
		w.set(sheet, fmt.Sprintf("A%d", row), b.Month)
		w.money(sheet, fmt.Sprintf("B%d", row), b.Sales)
		w.money(sheet, fmt.Sprintf("C%d", row), b.Cost)
		w.set(sheet, fmt.Sprintf("D%d", row), b.Orders)
		w.money(sheet, fmt.Sprintf("E%d", row), b.Profit)
	}
}

func (w *sheetWriter) writeTopProducts(sheet string, products []dto.TopProductDTO) {
	if !w.newSheet(sheet) {
		return
	}
	w.header(sheet, "Producto", "Categoría", "Cantidad", "Ingreso")
	for i, p := range products {
		row := i + 2
		w.set(sheet, fmt.Sprintf("A%d", row), p.Name)
		w.set(sheet, fmt.Sprintf("B%d", row), p.Category)
		w.set(sheet, fmt.Sprintf("C%d", row), p.Quantity.InexactFloat64())
		w.money(sheet, fmt.Sprintf("D%d", row), p.Revenue)
	}
}

func (w *sheetWriter) writeCategories(sheet string, categories []dto.CategorySummaryDTO) {
	if !w.newSheet(sheet) {
		return
	}
	w.header(sheet, "Categoría", "Ventas", "Participación %")
	for i, c := range categories {
		row := i + 2
		w.set(sheet, fmt.Sprintf("A%d", row), c.Category)
		w.money(sheet, fmt.Sprintf("B%d", row), c.Sales)
		w.set(sheet, fmt.Sprintf("C%d", row), c.Percent)
	}
}

func (w *sheetWriter) writeChannels(sheet string, channels []dto.ChannelSummaryDTO) {
	if !w.newSheet(sheet) {
		return
	}
	w.header(sheet, "Canal", "Ventas", "Pedidos", "Ticket promedio")
	for i, c := range channels {
		row := i + 2
		w.set(sheet, fmt.Sprintf("A%d", row), c.Channel)
		w.money(sheet, fmt.Sprintf("B%d", row), c.Sales)
		w.set(sheet, fmt.Sprintf("C%d", row), c.Orders)
		w.set(sheet, fmt.Sprintf("D%d", row), c.AverageTicket)
	}
}

func (w *sheetWriter) writeInventory(sheet string, status []dto.InventoryStatusDTO) {
	if !w.newSheet(sheet) {
		return
	}
	w.header(sheet, "Estado", "Productos")
	for i, s := range status {
		row := i + 2
		w.set(sheet, fmt.Sprintf("A%d", row), s.Label)
		w.set(sheet, fmt.Sprintf("B%d", row), s.Count)
	}
}

func (w *sheetWriter) writeCustomers(sheet string, segments []dto.CustomerSegmentDTO, top []dto.TopCustomerDTO) {
	if !w.newSheet(sheet) {
		return
	}
	w.header(sheet, "Segmento", "Clientes", "%")
	for i, s := range segments {
		row := i + 2
		w.set(sheet, fmt.Sprintf("A%d", row), s.Segment)
		w.set(sheet, fmt.Sprintf("B%d", row), s.Count)
		w.set(sheet, fmt.Sprintf("C%d", row), s.Percent)
	}

	base := len(segments) + 3
	w.set(sheet, fmt.Sprintf("A%d", base), "Mejores clientes")
	for i, c := range top {
		row := base + i + 1
		w.set(sheet, fmt.Sprintf("A%d", row), c.Name)
		w.set(sheet, fmt.Sprintf("B%d", row), c.Orders)
		w.money(sheet, fmt.Sprintf("C%d", row), c.TotalSpent)
	}
}
