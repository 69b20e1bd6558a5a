package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

// Cubetas fijas del gráfico de inventario: estado, etiqueta y color. Se
// emiten siempre las tres, en este orden, con conteo cero si no hay productos
// en alguna.
var stockBuckets = []struct {
	state string
	label string
	color string
}{
	{entity.StockAvailable, "Disponible", "#4CAF50"},
	{entity.StockLow, "Stock bajo", "#FF9800"},
	{entity.StockOut, "Agotado", "#F44336"},
}

// InventoryStatus cuenta productos por estado de stock en las tres cubetas fijas.
func InventoryStatus(products []repository.ProductRow) []dto.InventoryStatusDTO {
	counts := make(map[string]int, 3)
	for _, p := range products {
		counts[p.StockState]++
	}

	status := make([]dto.InventoryStatusDTO, 0, len(stockBuckets))
	for _, b := range stockBuckets {
		status = append(status, dto.InventoryStatusDTO{
			State: b.state,
			Label: b.label,
			Color: b.color,
			Count: counts[b.state],
		})
	}
	return status
}

// ProductStatus desglosa los productos por categoría con el conteo de cada
// estado de stock, ordenado por total de productos descendente.
func ProductStatus(products []repository.ProductRow) []dto.ProductStatusDTO {
	index := make(map[string]int, len(products))
	rows := []dto.ProductStatusDTO{}

	for _, p := range products {
		category := p.Category
		if category == "" {
			category = entity.CategoryFallback
		}
		i, ok := index[category]
		if !ok {
			rows = append(rows, dto.ProductStatusDTO{Category: category})
			i = len(rows) - 1
			index[category] = i
		}
		switch p.StockState {
		case entity.StockAvailable:
			rows[i].Available++
		case entity.StockLow:
			rows[i].LowStock++
		case entity.StockOut:
			rows[i].OutOfStock++
		}
		rows[i].Total++
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	return rows
}

// InventoryTurnover índice de rotación heurístico por categoría: unidades
// vendidas en el período dividido entre el número de productos de la
// categoría. Una categoría sin productos registrados reporta índice 0.
func InventoryTurnover(lines []repository.OrderLineRow, products []repository.ProductRow) []dto.TurnoverDTO {
	index := make(map[string]int)
	rows := []dto.TurnoverDTO{}

	ensure := func(category string) int {
		if category == "" {
			category = entity.CategoryFallback
		}
		i, ok := index[category]
		if !ok {
			rows = append(rows, dto.TurnoverDTO{
				Category:  category,
				UnitsSold: decimal.Zero,
				Index:     decimal.Zero,
			})
			i = len(rows) - 1
			index[category] = i
		}
		return i
	}

	for _, p := range products {
		rows[ensure(p.Category)].Products++
	}
	for _, l := range lines {
		i := ensure(l.Category)
		rows[i].UnitsSold = rows[i].UnitsSold.Add(amountOrZero(l.Quantity))
	}

	for i := range rows {
		if rows[i].Products > 0 {
			rows[i].Index = rows[i].UnitsSold.
				Div(decimal.NewFromInt(int64(rows[i].Products))).
				Round(2)
		}
	}
	return rows
}
