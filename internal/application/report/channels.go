package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

// ChannelFallback etiqueta para pedidos sin método de pago registrado.
const ChannelFallback = "Otro"

// ChannelPerformance agrupa los pedidos completados/entregados por método de
// pago, sumando ventas y contando pedidos por canal. El ticket promedio es
// entero: ventas/pedidos truncado hacia abajo, 0 en canales sin pedidos.
func ChannelPerformance(orders []repository.OrderRow) []dto.ChannelSummaryDTO {
	index := make(map[string]int, len(orders))
	channels := []dto.ChannelSummaryDTO{}

	for _, o := range orders {
		channel := o.PaymentMethod
		if channel == "" {
			channel = ChannelFallback
		}
		i, ok := index[channel]
		if !ok {
			channels = append(channels, dto.ChannelSummaryDTO{
				Channel: channel,
				Sales:   decimal.Zero,
			})
			i = len(channels) - 1
			index[channel] = i
		}
		channels[i].Sales = channels[i].Sales.Add(amountOrZero(o.Total))
		channels[i].Orders++
	}

	for i := range channels {
		if channels[i].Orders > 0 {
			channels[i].AverageTicket = channels[i].Sales.
				Div(decimal.NewFromInt(int64(channels[i].Orders))).
				IntPart()
		}
	}

	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].Sales.GreaterThan(channels[j].Sales)
	})
	return channels
}
