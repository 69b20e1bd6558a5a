package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Series mensuales ──────────────────────────────────────────────────────────

// MonthlyBucketDTO un mes del eje temporal de ventas. Siempre se emiten los 12
// meses del año en orden calendario, con ceros si no hubo pedidos.
type MonthlyBucketDTO struct {
	Month  string          `json:"month"`  // Ene..Dic
	Sales  decimal.Decimal `json:"sales"`  // suma de totales de pedidos
	Cost   decimal.Decimal `json:"cost"`   // subtotal × ratio de costo estimado
	Orders int             `json:"orders"` // pedidos del mes
	Profit decimal.Decimal `json:"profit"` // sales - cost, recalculado al final
}

// MonthlyCostDTO costo estimado por mes (vista del reporte financiero).
type MonthlyCostDTO struct {
	Month string          `json:"month"`
	Cost  decimal.Decimal `json:"cost"`
}

// MonthlyProfitDTO rentabilidad mensual derivada de la misma serie de ventas.
type MonthlyProfitDTO struct {
	Month     string          `json:"month"`
	Sales     decimal.Decimal `json:"sales"`
	Cost      decimal.Decimal `json:"cost"`
	Profit    decimal.Decimal `json:"profit"`
	MarginPct int             `json:"margin_pct"` // profit / sales × 100 redondeado, 0 si sin ventas
}

// ── Productos ─────────────────────────────────────────────────────────────────

// TopProductDTO producto más vendido por cantidad.
type TopProductDTO struct {
	Name     string          `json:"name"`
	Category string          `json:"category"` // "Sin categoría" si el join es nulo
	Quantity decimal.Decimal `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"` // qty × precio unitario por línea
}

// ProductMarginDTO margen estimado por producto.
type ProductMarginDTO struct {
	Name          string          `json:"name"`
	Revenue       decimal.Decimal `json:"revenue"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"` // revenue × ratio de costo
	Margin        decimal.Decimal `json:"margin"`
	MarginPct     int             `json:"margin_pct"`
}

// ProductStatusDTO desglose de productos por categoría y estado de stock.
type ProductStatusDTO struct {
	Category   string `json:"category"`
	Available  int    `json:"available"`
	LowStock   int    `json:"low_stock"`
	OutOfStock int    `json:"out_of_stock"`
	Total      int    `json:"total"`
}

// ── Categorías y canales ──────────────────────────────────────────────────────

// CategorySummaryDTO ventas por categoría con participación porcentual.
// Los porcentajes se redondean por categoría de forma independiente: la suma
// puede no dar exactamente 100 (deriva de redondeo aceptada).
type CategorySummaryDTO struct {
	Category string          `json:"category"`
	Sales    decimal.Decimal `json:"sales"`
	Percent  int             `json:"percent"` // round(sales/total×100), 0 si total es 0
}

// ChannelSummaryDTO rendimiento por canal (método de pago).
type ChannelSummaryDTO struct {
	Channel       string          `json:"channel"` // método de pago u "Otro"
	Sales         decimal.Decimal `json:"sales"`
	Orders        int             `json:"orders"`
	AverageTicket int64           `json:"average_ticket"` // sales/orders truncado, 0 sin pedidos
}

// ── Comparativo anual ─────────────────────────────────────────────────────────

// YearSeriesDTO una serie anual etiquetada: 12 valores en orden calendario.
type YearSeriesDTO struct {
	YearLabel string            `json:"year_label"` // ej: "2025"
	Values    []decimal.Decimal `json:"values"`     // siempre 12 entradas
}

// YearComparisonDTO comparativo año actual vs. año anterior. Es una faceta
// todo-o-nada: sin ambos años no hay comparación significativa.
type YearComparisonDTO struct {
	Months  []string      `json:"months"` // etiquetas Ene..Dic compartidas por ambas series
	Current YearSeriesDTO `json:"current"`
	Prior   YearSeriesDTO `json:"prior"`
}

// ── Métricas clave ────────────────────────────────────────────────────────────

// KeyMetricsDTO KPIs del mes calendario en curso.
//
// ProfitMarginPct y ConversionRatePct son heurísticas fijas configurables, no
// cálculos reales; NewCustomers/ReturningCustomers se derivan como fracciones
// del total de clientes activos.
type KeyMetricsDTO struct {
	TotalSales         decimal.Decimal `json:"total_sales"`
	GrowthPct          decimal.Decimal `json:"growth_pct"` // vs. mes anterior, 1 decimal
	CompletedOrders    int             `json:"completed_orders"`
	AverageTicket      decimal.Decimal `json:"average_ticket"` // 2 decimales, 0 sin pedidos
	ProfitMarginPct    decimal.Decimal `json:"profit_margin_pct"`
	ConversionRatePct  decimal.Decimal `json:"conversion_rate_pct"`
	NewCustomers       int             `json:"new_customers"`
	ReturningCustomers int             `json:"returning_customers"`
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryStatusDTO conteo de productos por estado de stock. Siempre se
// emiten los tres estados, con conteo cero si no hay productos en uno.
type InventoryStatusDTO struct {
	State string `json:"state"` // available|low-stock|out-of-stock
	Label string `json:"label"` // etiqueta en pantalla
	Color string `json:"color"` // color fijo del gráfico
	Count int    `json:"count"`
}

// TurnoverDTO índice de rotación heurístico por categoría.
type TurnoverDTO struct {
	Category  string          `json:"category"`
	UnitsSold decimal.Decimal `json:"units_sold"`
	Products  int             `json:"products"`
	Index     decimal.Decimal `json:"index"` // units_sold / products, 2 decimales
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CustomerSegmentDTO segmento de clientes por gasto acumulado.
type CustomerSegmentDTO struct {
	Segment string `json:"segment"` // Frecuente | Regular | Ocasional
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// TopCustomerDTO cliente con mayor gasto acumulado.
type TopCustomerDTO struct {
	Name       string          `json:"name"`
	Orders     int             `json:"orders"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// ── Reporte compuesto ─────────────────────────────────────────────────────────

// BusinessReportDTO objeto compuesto que consumen la capa de presentación y
// los exportadores. Cada faceta fallida aparece con su valor por defecto
// (slice vacío, métricas en cero o nil para el comparativo anual); la
// composición en sí nunca falla.
type BusinessReportDTO struct {
	GeneratedAt time.Time `json:"generated_at"`
	Year        int       `json:"year"`

	MonthlySales       []MonthlyBucketDTO   `json:"monthly_sales"`       // siempre 12 o vacío
	TopProducts        []TopProductDTO      `json:"top_products"`
	CategorySales      []CategorySummaryDTO `json:"category_sales"`
	YearComparison     *YearComparisonDTO   `json:"year_comparison"`     // nil si falta alguno de los dos años
	KeyMetrics         KeyMetricsDTO        `json:"key_metrics"`
	InventoryStatus    []InventoryStatusDTO `json:"inventory_status"`    // siempre 3 o vacío
	ChannelPerformance []ChannelSummaryDTO  `json:"channel_performance"`
	ProductStatus      []ProductStatusDTO   `json:"product_status"`
	InventoryTurnover  []TurnoverDTO        `json:"inventory_turnover"`
	ProductMargins     []ProductMarginDTO   `json:"product_margins"`
	CustomerSegments   []CustomerSegmentDTO `json:"customer_segments"`
	TopCustomers       []TopCustomerDTO     `json:"top_customers"`
	MonthlyCosts       []MonthlyCostDTO     `json:"monthly_costs"`
	MonthlyProfit      []MonthlyProfitDTO   `json:"monthly_profit"`
}
