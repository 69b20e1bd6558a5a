package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

// KeyMetrics calcula los KPIs del mes calendario en curso a partir de los
// pedidos completados/entregados del mes y del mes inmediatamente anterior.
//
// Regla de crecimiento: (actual-anterior)/anterior × 100 a 1 decimal. Si el
// mes anterior cerró en 0 y el actual vendió algo, el crecimiento se fija en
// 100 (evita la división por cero y señala "crecimiento desde cero"); si
// ambos son 0, el crecimiento es 0.
//
// ProfitMarginPct y ConversionRatePct salen de las heurísticas fijas, y los
// clientes nuevos/recurrentes se derivan como fracción del total de clientes
// activos: no se rastrean de forma independiente.
func KeyMetrics(current, prior []repository.OrderRow, activeCustomers int, h Heuristics) dto.KeyMetricsDTO {
	curSales, curOrders := foldSales(current)
	priSales, _ := foldSales(prior)

	avgTicket := decimal.Zero
	if curOrders > 0 {
		avgTicket = curSales.Div(decimal.NewFromInt(int64(curOrders))).Round(2)
	}

	newCustomers := int(h.NewCustomerPct.
		Mul(decimal.NewFromInt(int64(activeCustomers))).
		Div(hundred).
		Round(0).IntPart())

	return dto.KeyMetricsDTO{
		TotalSales:         curSales,
		GrowthPct:          growthPct(curSales, priSales),
		CompletedOrders:    curOrders,
		AverageTicket:      avgTicket,
		ProfitMarginPct:    h.ProfitMarginPct,
		ConversionRatePct:  h.ConversionPct,
		NewCustomers:       newCustomers,
		ReturningCustomers: activeCustomers - newCustomers,
	}
}

// foldSales suma los totales de los pedidos (montos ausentes cuentan 0) y los cuenta.
func foldSales(orders []repository.OrderRow) (sales decimal.Decimal, count int) {
	sales = decimal.Zero
	for _, o := range orders {
		sales = sales.Add(amountOrZero(o.Total))
		count++
	}
	return sales, count
}

// growthPct crecimiento porcentual del mes actual frente al anterior, 1 decimal.
func growthPct(current, prior decimal.Decimal) decimal.Decimal {
	if !prior.IsPositive() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(prior).Div(prior).Mul(hundred).Round(1)
}
