package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-api/internal/application/report"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

func channelOrder(method string, total float64) repository.OrderRow {
	o := orderOn(mustDate(2025, time.May, 10), total)
	o.PaymentMethod = method
	return o
}

func TestChannelPerformance_AgrupaPorMetodoDePago(t *testing.T) {
	orders := []repository.OrderRow{
		channelOrder("efectivo", 100),
		channelOrder("efectivo", 50),
		channelOrder("tarjeta", 500),
	}

	channels := report.ChannelPerformance(orders)

	require.Len(t, channels, 2)
	assert.Equal(t, "tarjeta", channels[0].Channel, "orden por ventas descendente")
	assert.True(t, channels[0].Sales.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 1, channels[0].Orders)

	assert.Equal(t, "efectivo", channels[1].Channel)
	assert.True(t, channels[1].Sales.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, channels[1].Orders)
	assert.EqualValues(t, 75, channels[1].AverageTicket)
}

func TestChannelPerformance_TicketPromedioTruncado(t *testing.T) {
	orders := []repository.OrderRow{
		channelOrder("nequi", 100),
		channelOrder("nequi", 99),
	}

	channels := report.ChannelPerformance(orders)

	require.Len(t, channels, 1)
	assert.EqualValues(t, 99, channels[0].AverageTicket, "199/2 = 99.5 se trunca hacia abajo, no se redondea")
}

func TestChannelPerformance_MetodoVacioCaeEnOtro(t *testing.T) {
	orders := []repository.OrderRow{channelOrder("", 300)}

	channels := report.ChannelPerformance(orders)

	require.Len(t, channels, 1)
	assert.Equal(t, "Otro", channels[0].Channel)
}

func TestChannelPerformance_SinPedidos(t *testing.T) {
	channels := report.ChannelPerformance(nil)
	assert.NotNil(t, channels)
	assert.Empty(t, channels)
}
