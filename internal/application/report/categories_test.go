package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-api/internal/application/report"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

func TestCategorySales_PorcentajesRedondeados(t *testing.T) {
	lines := []repository.OrderLineRow{
		line("A", 1, 300, "Ropa"),
		line("B", 1, 200, "Calzado"),
		line("C", 1, 500, "Accesorios"),
	}

	cats := report.CategorySales(lines)

	require.Len(t, cats, 3)
	assert.Equal(t, "Accesorios", cats[0].Category, "orden por ventas descendente")
	assert.Equal(t, 50, cats[0].Percent)
	assert.Equal(t, "Ropa", cats[1].Category)
	assert.Equal(t, 30, cats[1].Percent)
	assert.Equal(t, "Calzado", cats[2].Category)
	assert.Equal(t, 20, cats[2].Percent)

	sum := cats[0].Percent + cats[1].Percent + cats[2].Percent
	assert.Equal(t, 100, sum)
}

func TestCategorySales_DerivaDeRedondeoAceptada(t *testing.T) {
	// Tres categorías iguales: 33+33+33 = 99. La suma no se corrige a 100.
	lines := []repository.OrderLineRow{
		line("A", 1, 1, "X"),
		line("B", 1, 1, "Y"),
		line("C", 1, 1, "Z"),
	}

	cats := report.CategorySales(lines)

	require.Len(t, cats, 3)
	sum := 0
	for _, c := range cats {
		assert.Equal(t, 33, c.Percent)
		sum += c.Percent
	}
	assert.Equal(t, 99, sum, "la deriva de redondeo se tolera, no se redistribuye")
}

func TestCategorySales_UsaSubtotalRegistradoYFallback(t *testing.T) {
	conDescuento := line("Promo", 2, 100, "")
	conDescuento.Subtotal = dec(150) // subtotal con descuento, distinto de qty × precio

	cats := report.CategorySales([]repository.OrderLineRow{conDescuento})

	require.Len(t, cats, 1)
	assert.Equal(t, "Sin categoría", cats[0].Category)
	assert.True(t, cats[0].Sales.Equal(decimal.NewFromInt(150)), "la venta por categoría suma el subtotal registrado")
	assert.Equal(t, 100, cats[0].Percent)
}

func TestCategorySales_SinLineasDevuelveVacio(t *testing.T) {
	cats := report.CategorySales(nil)
	assert.NotNil(t, cats)
	assert.Empty(t, cats)
}
