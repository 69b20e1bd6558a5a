package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/application/report"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
	"github.com/jhoicas/reportes-api/internal/infrastructure/export"
	apphttp "github.com/jhoicas/reportes-api/internal/interfaces/http"
)

// fixedRepo repositorio en memoria con un único pedido, suficiente para
// ejercitar los endpoints sin base de datos.
type fixedRepo struct{}

func (fixedRepo) GetOrdersInRange(_ context.Context, _ []string, start, end time.Time) ([]repository.OrderRow, error) {
	date := time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC)
	if date.Before(start) || date.After(end) {
		return []repository.OrderRow{}, nil
	}
	return []repository.OrderRow{{
		ID:            "ord-1",
		Date:          date,
		Total:         decimal.NewNullDecimal(decimal.NewFromInt(1000)),
		Subtotal:      decimal.NewNullDecimal(decimal.NewFromInt(900)),
		Status:        "completed",
		PaymentMethod: "efectivo",
	}}, nil
}

func (fixedRepo) GetOrderLinesInRange(context.Context, time.Time, time.Time) ([]repository.OrderLineRow, error) {
	return []repository.OrderLineRow{}, nil
}

func (fixedRepo) GetProducts(context.Context) ([]repository.ProductRow, error) {
	return []repository.ProductRow{}, nil
}

func (fixedRepo) GetCustomers(context.Context) ([]repository.CustomerRow, error) {
	return []repository.CustomerRow{}, nil
}

func testComposer() *report.Composer {
	return report.NewComposer(fixedRepo{}, report.DefaultHeuristics(), nil).
		WithClock(func() time.Time {
			return time.Date(2025, time.April, 20, 9, 0, 0, 0, time.UTC)
		})
}

func buildReportApp() *fiber.App {
	app := fiber.New()
	reportHandler := apphttp.NewReportHandler(testComposer())
	exportHandler := apphttp.NewExportHandler(testComposer(), map[string]export.ReportExporter{
		"html": export.NewHTMLExporter(),
	})
	app.Get("/api/reportes", reportHandler.GetReport)
	app.Get("/api/reportes/export", exportHandler.Export)
	return app
}

func getJSON(t *testing.T, app *fiber.App, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestGetReport_DefaultVentas(t *testing.T) {
	app := buildReportApp()

	resp, body := getJSON(t, app, "/api/reportes?anio=2025")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rep dto.BusinessReportDTO
	require.NoError(t, json.Unmarshal(body, &rep))
	assert.Equal(t, 2025, rep.Year)
	require.Len(t, rep.MonthlySales, 12, "el tipo por defecto (ventas) incluye la serie mensual")
	assert.True(t, rep.MonthlySales[3].Sales.Equal(decimal.NewFromInt(1000)), "abril acumula el pedido de prueba")
	assert.Empty(t, rep.InventoryStatus, "las facetas de inventario se recortan en el reporte de ventas")
}

func TestGetReport_TipoInventarioRecortaVentas(t *testing.T) {
	app := buildReportApp()

	resp, body := getJSON(t, app, "/api/reportes?tipo=inventario&anio=2025")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rep dto.BusinessReportDTO
	require.NoError(t, json.Unmarshal(body, &rep))
	assert.Empty(t, rep.MonthlySales)
	assert.Len(t, rep.InventoryStatus, 3)
}

func TestGetReport_TipoDesconocidoDevuelve400(t *testing.T) {
	app := buildReportApp()

	resp, body := getJSON(t, app, "/api/reportes?tipo=nomina")

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "INVALID_TYPE", errResp.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/reportes/export
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_HTMLConCabecerasDeDescarga(t *testing.T) {
	app := buildReportApp()

	resp, body := getJSON(t, app, "/api/reportes/export?formato=html&anio=2025")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), `reporte-ventas-2025.html`)
	assert.Contains(t, string(body), "Reporte de Ventas")
}

func TestExport_FormatoDesconocidoDevuelve400(t *testing.T) {
	app := buildReportApp()

	resp, body := getJSON(t, app, "/api/reportes/export?formato=csv")

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "INVALID_FORMAT", errResp.Code)
}
