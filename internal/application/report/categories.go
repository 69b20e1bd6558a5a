package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

// CategorySales agrupa las líneas por categoría y suma el subtotal registrado
// de cada línea. El porcentaje de participación se redondea por categoría de
// forma independiente: la suma de porcentajes puede dar 99 o 101 y eso se
// acepta, no se corrige.
func CategorySales(lines []repository.OrderLineRow) []dto.CategorySummaryDTO {
	index := make(map[string]int, len(lines))
	categories := []dto.CategorySummaryDTO{}
	total := decimal.Zero

	for _, l := range lines {
		category := l.Category
		if category == "" {
			category = entity.CategoryFallback
		}
		i, ok := index[category]
		if !ok {
			categories = append(categories, dto.CategorySummaryDTO{
				Category: category,
				Sales:    decimal.Zero,
			})
			i = len(categories) - 1
			index[category] = i
		}
		subtotal := amountOrZero(l.Subtotal)
		categories[i].Sales = categories[i].Sales.Add(subtotal)
		total = total.Add(subtotal)
	}

	for i := range categories {
		categories[i].Percent = roundedPct(categories[i].Sales, total)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Sales.GreaterThan(categories[j].Sales)
	})
	return categories
}
