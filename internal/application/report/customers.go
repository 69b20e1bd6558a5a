package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

const defaultTopCustomers = 5

// Umbrales de gasto acumulado (COP) para la segmentación de clientes.
var (
	frequentSpendMin = decimal.NewFromInt(1_000_000)
	regularSpendMin  = decimal.NewFromInt(200_000)
)

// CustomerSegments clasifica los clientes en tres segmentos fijos por gasto
// acumulado. Se emiten siempre los tres segmentos; los porcentajes se
// redondean por segmento (la deriva de redondeo se acepta).
func CustomerSegments(customers []repository.CustomerRow) []dto.CustomerSegmentDTO {
	segments := []dto.CustomerSegmentDTO{
		{Segment: "Frecuente"},
		{Segment: "Regular"},
		{Segment: "Ocasional"},
	}

	for _, c := range customers {
		switch {
		case c.TotalSpent.GreaterThanOrEqual(frequentSpendMin):
			segments[0].Count++
		case c.TotalSpent.GreaterThanOrEqual(regularSpendMin):
			segments[1].Count++
		default:
			segments[2].Count++
		}
	}

	total := decimal.NewFromInt(int64(len(customers)))
	for i := range segments {
		segments[i].Percent = roundedPct(decimal.NewFromInt(int64(segments[i].Count)), total)
	}
	return segments
}

// TopCustomers clientes ordenados por gasto acumulado descendente, truncados
// al límite pedido (default 5). Los empates conservan el orden de llegada.
func TopCustomers(customers []repository.CustomerRow, limit int) []dto.TopCustomerDTO {
	if limit <= 0 {
		limit = defaultTopCustomers
	}

	top := make([]dto.TopCustomerDTO, 0, len(customers))
	for _, c := range customers {
		top = append(top, dto.TopCustomerDTO{
			Name:       c.Name,
			Orders:     c.Orders,
			TotalSpent: c.TotalSpent,
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalSpent.GreaterThan(top[j].TotalSpent)
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}

// ActiveCustomerCount cuenta los clientes marcados como activos.
func ActiveCustomerCount(customers []repository.CustomerRow) int {
	active := 0
	for _, c := range customers {
		if c.Active {
			active++
		}
	}
	return active
}
