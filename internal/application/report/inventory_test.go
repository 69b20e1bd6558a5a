package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-api/internal/application/report"
	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

func TestInventoryStatus_SiempreTresCubetasConColorFijo(t *testing.T) {
	products := []repository.ProductRow{
		{Name: "P1", Category: "Ropa", StockState: entity.StockAvailable},
		{Name: "P2", Category: "Ropa", StockState: entity.StockAvailable},
		{Name: "P3", Category: "Calzado", StockState: entity.StockOut},
	}

	status := report.InventoryStatus(products)

	require.Len(t, status, 3, "las tres cubetas se emiten aunque alguna quede en cero")
	assert.Equal(t, entity.StockAvailable, status[0].State)
	assert.Equal(t, "Disponible", status[0].Label)
	assert.Equal(t, "#4CAF50", status[0].Color)
	assert.Equal(t, 2, status[0].Count)

	assert.Equal(t, "Stock bajo", status[1].Label)
	assert.Equal(t, "#FF9800", status[1].Color)
	assert.Zero(t, status[1].Count, "sin productos en stock bajo el conteo es 0")

	assert.Equal(t, "Agotado", status[2].Label)
	assert.Equal(t, "#F44336", status[2].Color)
	assert.Equal(t, 1, status[2].Count)
}

func TestInventoryStatus_SinProductos(t *testing.T) {
	status := report.InventoryStatus(nil)

	require.Len(t, status, 3)
	for _, s := range status {
		assert.Zero(t, s.Count)
	}
}

func TestProductStatus_DesglosePorCategoria(t *testing.T) {
	products := []repository.ProductRow{
		{Name: "P1", Category: "Ropa", StockState: entity.StockAvailable},
		{Name: "P2", Category: "Ropa", StockState: entity.StockLow},
		{Name: "P3", Category: "Ropa", StockState: entity.StockOut},
		{Name: "P4", Category: "", StockState: entity.StockAvailable},
	}

	rows := report.ProductStatus(products)

	require.Len(t, rows, 2)
	assert.Equal(t, "Ropa", rows[0].Category, "la categoría con más productos va primero")
	assert.Equal(t, 1, rows[0].Available)
	assert.Equal(t, 1, rows[0].LowStock)
	assert.Equal(t, 1, rows[0].OutOfStock)
	assert.Equal(t, 3, rows[0].Total)

	assert.Equal(t, "Sin categoría", rows[1].Category)
	assert.Equal(t, 1, rows[1].Total)
}

func TestInventoryTurnover_IndicePorCategoria(t *testing.T) {
	products := []repository.ProductRow{
		{Name: "P1", Category: "Ropa", StockState: entity.StockAvailable},
		{Name: "P2", Category: "Ropa", StockState: entity.StockAvailable},
	}
	lines := []repository.OrderLineRow{
		line("P1", 7, 10, "Ropa"),
		line("P2", 4, 10, "Ropa"),
	}

	rows := report.InventoryTurnover(lines, products)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].UnitsSold.Equal(decimal.NewFromInt(11)))
	assert.Equal(t, 2, rows[0].Products)
	assert.True(t, rows[0].Index.Equal(decimal.NewFromFloat(5.5)), "11 unidades / 2 productos")
}

func TestInventoryTurnover_CategoriaSinProductosReportaCero(t *testing.T) {
	// Hay ventas de una categoría que ya no tiene productos registrados.
	lines := []repository.OrderLineRow{line("Descontinuado", 9, 10, "Legacy")}

	rows := report.InventoryTurnover(lines, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "Legacy", rows[0].Category)
	assert.True(t, rows[0].UnitsSold.Equal(decimal.NewFromInt(9)))
	assert.Zero(t, rows[0].Products)
	assert.True(t, rows[0].Index.IsZero(), "sin productos el índice queda en 0, no divide por cero")
}
