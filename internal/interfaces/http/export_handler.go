package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/application/report"
	"github.com/jhoicas/reportes-api/internal/infrastructure/export"
)

// ExportHandler sirve las descargas del reporte compuesto en los formatos
// soportados. Reutiliza el mismo compositor que la vista: exportar no
// recalcula nada distinto de lo que se muestra en pantalla.
type ExportHandler struct {
	composer  *report.Composer
	exporters map[string]export.ReportExporter
}

// NewExportHandler construye el handler con los exportadores disponibles.
func NewExportHandler(composer *report.Composer, exporters map[string]export.ReportExporter) *ExportHandler {
	return &ExportHandler{composer: composer, exporters: exporters}
}

// Export godoc
// @Summary      Exportar reporte
// @Tags         reportes
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        tipo     query  string  false  "ventas|inventario|productos|clientes|financiero (default ventas)"
// @Param        anio     query  int     false  "Año del reporte (default año en curso)"
// @Param        formato  query  string  false  "excel|pdf|html (default excel)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/export [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	reportType := c.Query("tipo", report.TypeSales)
	if _, ok := report.SectionsFor(reportType); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_TYPE", Message: "tipo de reporte desconocido: " + reportType,
		})
	}
	format := c.Query("formato", "excel")
	exporter, ok := h.exporters[format]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_FORMAT", Message: "formato de exportación desconocido: " + format,
		})
	}
	year := c.QueryInt("anio", 0)

	composed := h.composer.Compose(c.Context(), year)
	payload, err := exporter.Export(report.Prune(composed, reportType), reportType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "EXPORT_FAILED", Message: err.Error(),
		})
	}

	filename := fmt.Sprintf("reporte-%s-%d.%s", reportType, composed.Year, exporter.FileExt())
	c.Set(fiber.HeaderContentType, exporter.ContentType())
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}
