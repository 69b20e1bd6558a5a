package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/application/report"
)

// ReportHandler maneja los endpoints del módulo de reportes.
type ReportHandler struct {
	composer *report.Composer
}

// NewReportHandler construye el handler.
func NewReportHandler(composer *report.Composer) *ReportHandler {
	return &ReportHandler{composer: composer}
}

// GetReport godoc
// @Summary      Reporte de negocio compuesto
// @Description  Compone el reporte del tipo pedido: las consultas corren en
//               paralelo y cada faceta fallida degrada a su valor vacío, el
//               endpoint siempre responde 200 con un reporte bien formado.
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        tipo  query  string  false  "ventas|inventario|productos|clientes|financiero (default ventas)"
// @Param        anio  query  int     false  "Año del reporte (default año en curso)"
// @Success      200  {object}  dto.BusinessReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes [get]
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	reportType := c.Query("tipo", report.TypeSales)
	if _, ok := report.SectionsFor(reportType); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_TYPE", Message: "tipo de reporte desconocido: " + reportType,
		})
	}
	year := c.QueryInt("anio", 0)

	composed := h.composer.Compose(c.Context(), year)
	return c.JSON(report.Prune(composed, reportType))
}
