package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

// MonthlySales pliega los pedidos completados/entregados de un año en las 12
// cubetas mensuales fijas. La salida siempre tiene 12 entradas en orden
// calendario, con ceros en los meses sin pedidos, para que la vista tenga un
// eje temporal sin huecos.
//
// El costo es estimado: subtotal × CostRatio. El profit se recalcula al final
// como sales - cost, nunca se acumula de forma independiente.
func MonthlySales(orders []repository.OrderRow, h Heuristics) []dto.MonthlyBucketDTO {
	buckets := make([]dto.MonthlyBucketDTO, 12)
	for i := range buckets {
		buckets[i] = dto.MonthlyBucketDTO{
			Month:  monthLabels[i],
			Sales:  decimal.Zero,
			Cost:   decimal.Zero,
			Profit: decimal.Zero,
		}
	}

	for _, o := range orders {
		m := int(o.Date.Month()) - 1
		buckets[m].Sales = buckets[m].Sales.Add(amountOrZero(o.Total))
		buckets[m].Cost = buckets[m].Cost.Add(amountOrZero(o.Subtotal).Mul(h.CostRatio))
		buckets[m].Orders++
	}

	for i := range buckets {
		buckets[i].Profit = buckets[i].Sales.Sub(buckets[i].Cost)
	}
	return buckets
}

// MonthlyCosts proyecta la serie mensual a la vista de costos del reporte financiero.
func MonthlyCosts(buckets []dto.MonthlyBucketDTO) []dto.MonthlyCostDTO {
	costs := make([]dto.MonthlyCostDTO, 0, len(buckets))
	for _, b := range buckets {
		costs = append(costs, dto.MonthlyCostDTO{Month: b.Month, Cost: b.Cost})
	}
	return costs
}

// MonthlyProfit proyecta la serie mensual a la vista de rentabilidad:
// mismas cifras más el margen porcentual del mes (0 en meses sin ventas).
func MonthlyProfit(buckets []dto.MonthlyBucketDTO) []dto.MonthlyProfitDTO {
	rows := make([]dto.MonthlyProfitDTO, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, dto.MonthlyProfitDTO{
			Month:     b.Month,
			Sales:     b.Sales,
			Cost:      b.Cost,
			Profit:    b.Profit,
			MarginPct: roundedPct(b.Profit, b.Sales),
		})
	}
	return rows
}
