package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

const (
	defaultTopProducts    = 5
	defaultProductMargins = 10
)

// TopProducts agrupa las líneas por nombre exacto de producto y acumula
// cantidad e ingreso. El ingreso es qty × precio unitario por línea, NO el
// subtotal registrado en la línea: pueden diferir si la línea incluye
// descuentos. La categoría se toma de la primera aparición del producto, con
// "Sin categoría" cuando el join es nulo.
//
// Orden: cantidad descendente, estable; los empates conservan el orden de
// llegada de las filas. Se trunca al límite pedido (default 5).
func TopProducts(lines []repository.OrderLineRow, limit int) []dto.TopProductDTO {
	if limit <= 0 {
		limit = defaultTopProducts
	}

	index := make(map[string]int, len(lines))
	products := []dto.TopProductDTO{}
	for _, l := range lines {
		i, ok := index[l.ProductName]
		if !ok {
			category := l.Category
			if category == "" {
				category = entity.CategoryFallback
			}
			products = append(products, dto.TopProductDTO{
				Name:     l.ProductName,
				Category: category,
				Quantity: decimal.Zero,
				Revenue:  decimal.Zero,
			})
			i = len(products) - 1
			index[l.ProductName] = i
		}
		qty := amountOrZero(l.Quantity)
		products[i].Quantity = products[i].Quantity.Add(qty)
		products[i].Revenue = products[i].Revenue.Add(qty.Mul(amountOrZero(l.UnitPrice)))
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Quantity.GreaterThan(products[j].Quantity)
	})
	if len(products) > limit {
		products = products[:limit]
	}
	return products
}

// ProductMargins calcula el margen estimado por producto: ingreso agrupado,
// costo estimado (ingreso × CostRatio) y margen resultante, ordenado por
// margen descendente.
func ProductMargins(lines []repository.OrderLineRow, limit int, h Heuristics) []dto.ProductMarginDTO {
	if limit <= 0 {
		limit = defaultProductMargins
	}

	index := make(map[string]int, len(lines))
	margins := []dto.ProductMarginDTO{}
	for _, l := range lines {
		i, ok := index[l.ProductName]
		if !ok {
			margins = append(margins, dto.ProductMarginDTO{
				Name:          l.ProductName,
				Revenue:       decimal.Zero,
				EstimatedCost: decimal.Zero,
				Margin:        decimal.Zero,
			})
			i = len(margins) - 1
			index[l.ProductName] = i
		}
		qty := amountOrZero(l.Quantity)
		margins[i].Revenue = margins[i].Revenue.Add(qty.Mul(amountOrZero(l.UnitPrice)))
	}

	for i := range margins {
		margins[i].EstimatedCost = margins[i].Revenue.Mul(h.CostRatio).Round(2)
		margins[i].Margin = margins[i].Revenue.Sub(margins[i].EstimatedCost)
		margins[i].MarginPct = roundedPct(margins[i].Margin, margins[i].Revenue)
	}

	sort.SliceStable(margins, func(i, j int) bool {
		return margins[i].Margin.GreaterThan(margins[j].Margin)
	})
	if len(margins) > limit {
		margins = margins[:limit]
	}
	return margins
}
