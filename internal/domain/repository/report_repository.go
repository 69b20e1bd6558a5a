package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderRow fila cruda de un pedido tal como la devuelve la DB.
// Total y Subtotal son NullDecimal: un monto ausente o no numérico en la
// fuente NO es un error; el agregador lo coacciona a cero al plegar.
type OrderRow struct {
	ID            string
	Date          time.Time
	Total         decimal.NullDecimal // monto final del pedido
	Subtotal      decimal.NullDecimal // base para el costo estimado
	Status        string              // pending|in-progress|completed|delivered|cancelled
	PaymentMethod string              // vacío si el pedido no registró método de pago
}

// OrderLineRow fila cruda de una línea de pedido con el join de una sola
// profundidad línea → producto → categoría ya resuelto.
type OrderLineRow struct {
	ProductName string
	Quantity    decimal.NullDecimal
	UnitPrice   decimal.NullDecimal
	Subtotal    decimal.NullDecimal // subtotal registrado en la línea (puede incluir descuentos)
	Category    string              // vacío si el join con producto/categoría es nulo
}

// ProductRow fila cruda de un producto para los reportes de inventario.
type ProductRow struct {
	Name       string
	Category   string // vacío si no tiene categoría
	StockState string // available|low-stock|out-of-stock
}

// CustomerRow fila cruda de un cliente con sus acumulados.
type CustomerRow struct {
	Name       string
	Orders     int
	TotalSpent decimal.Decimal
	Active     bool
}

// ReportRepository define las consultas de lectura que alimentan los
// agregadores de reportes. Las implementaciones son read-only.
//
// Contrato de resultados: un slice vacío es un resultado válido ("no hay
// registros que coincidan"); un error significa que la faceta dependiente no
// puede calcularse y degrada a su valor por defecto documentado.
type ReportRepository interface {
	// GetOrdersInRange devuelve los pedidos cuyo estado está en statuses y cuya
	// fecha cae en [start, end] (límites inclusivos).
	GetOrdersInRange(ctx context.Context, statuses []string, start, end time.Time) ([]OrderRow, error)

	// GetOrderLinesInRange devuelve las líneas de pedido del rango, con la
	// categoría del producto resuelta vía join de un salto.
	// Solo incluye líneas de pedidos completados o entregados.
	GetOrderLinesInRange(ctx context.Context, start, end time.Time) ([]OrderLineRow, error)

	// GetProducts devuelve todos los productos con su estado de stock.
	GetProducts(ctx context.Context) ([]ProductRow, error)

	// GetCustomers devuelve todos los clientes con sus acumulados de compra.
	GetCustomers(ctx context.Context) ([]CustomerRow, error)
}
