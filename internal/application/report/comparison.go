package report

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

// YearComparison construye el comparativo de ventas mensuales entre el año
// actual y el anterior. Cada serie lleva su etiqueta de año explícita para
// que la vista pueda rotular sin recalcular "ahora".
//
// La faceta es todo-o-nada: el compositor solo la construye cuando las
// consultas de AMBOS años tuvieron éxito; con un solo año no hay comparación
// significativa.
func YearComparison(currentYear, priorYear int, current, prior []repository.OrderRow) *dto.YearComparisonDTO {
	return &dto.YearComparisonDTO{
		Months: MonthLabels(),
		Current: dto.YearSeriesDTO{
			YearLabel: strconv.Itoa(currentYear),
			Values:    monthlyTotals(current),
		},
		Prior: dto.YearSeriesDTO{
			YearLabel: strconv.Itoa(priorYear),
			Values:    monthlyTotals(prior),
		},
	}
}

// monthlyTotals siembra 12 ceros y acumula el total de cada pedido en su mes.
func monthlyTotals(orders []repository.OrderRow) []decimal.Decimal {
	values := make([]decimal.Decimal, 12)
	for i := range values {
		values[i] = decimal.Zero
	}
	for _, o := range orders {
		m := int(o.Date.Month()) - 1
		values[m] = values[m].Add(amountOrZero(o.Total))
	}
	return values
}
