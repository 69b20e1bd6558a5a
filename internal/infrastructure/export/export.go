// Package export serializa el reporte compuesto ya calculado a los formatos
// descargables de la vista: hoja de cálculo, PDF y documento HTML imprimible.
// Ningún exportador recalcula cifras; solo da formato a BusinessReportDTO.
package export

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/reportes-api/internal/application/dto"
)

// ReportExporter serializa un reporte compuesto a un formato descargable.
type ReportExporter interface {
	Export(report *dto.BusinessReportDTO, reportType string) ([]byte, error)
	ContentType() string
	FileExt() string
}

// printer da formato de moneda con agrupación de miles en español.
// El núcleo entrega números planos; el formato es responsabilidad de esta capa.
var printer = message.NewPrinter(language.Spanish)

// formatMoney "$ 1.234.567,89" para los documentos de salida.
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("$ %v", number.Decimal(f, number.MaxFractionDigits(2)))
}

// reportTitle etiqueta legible del tipo de reporte.
func reportTitle(reportType string) string {
	switch reportType {
	case "ventas":
		return "Reporte de Ventas"
	case "inventario":
		return "Reporte de Inventario"
	case "productos":
		return "Reporte de Productos"
	case "clientes":
		return "Reporte de Clientes"
	case "financiero":
		return "Reporte Financiero"
	default:
		return "Reporte de Negocio"
	}
}
