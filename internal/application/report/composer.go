// Package report implementa el núcleo de agregación de reportes de negocio:
// funciones puras que pliegan filas crudas de pedidos, productos y clientes
// en las estructuras que consumen la vista del dashboard y los exportadores,
// más el compositor que las orquesta.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/dto"
	"github.com/jhoicas/reportes-api/internal/domain/entity"
	"github.com/jhoicas/reportes-api/internal/domain/repository"
	"github.com/jhoicas/reportes-api/pkg/logger"
)

// Composer ensambla el reporte compuesto a partir de consultas independientes.
//
// Política de fallos: cada consulta fallida degrada SOLO sus facetas
// dependientes al valor vacío documentado (se registra en Warn); el
// comparativo anual es la excepción y exige que ambos años resuelvan. La
// composición en sí nunca devuelve error: siempre hay un reporte bien formado
// aunque todas las facetas estén vacías.
type Composer struct {
	repo  repository.ReportRepository
	h     Heuristics
	log   *logger.Logger
	nowFn func() time.Time
}

// NewComposer construye el compositor con el reloj de pared real.
func NewComposer(repo repository.ReportRepository, h Heuristics, log *logger.Logger) *Composer {
	return &Composer{repo: repo, h: h, log: log, nowFn: time.Now}
}

// WithClock fija el proveedor de "ahora" (para pruebas con fechas deterministas).
func (c *Composer) WithClock(nowFn func() time.Time) *Composer {
	c.nowFn = nowFn
	return c
}

type ordersResult struct {
	rows []repository.OrderRow
	err  error
}

type linesResult struct {
	rows []repository.OrderLineRow
	err  error
}

type productsResult struct {
	rows []repository.ProductRow
	err  error
}

type customersResult struct {
	rows []repository.CustomerRow
	err  error
}

// Compose lanza las consultas en paralelo, espera a que TODAS terminen (sin
// cortocircuito en el primer fallo) y pliega cada resultado con su agregador.
// Si year <= 0 se usa el año del reloj inyectado.
//
// Un refresh solapado simplemente inicia una composición nueva; no se cancela
// la que está en curso.
func (c *Composer) Compose(ctx context.Context, year int) *dto.BusinessReportDTO {
	now := c.nowFn()
	if year <= 0 {
		year = now.Year()
	}

	yStart, yEnd := yearRange(year, now.Location())
	pStart, pEnd := yearRange(year-1, now.Location())
	mStart, mEnd := monthRange(now)
	pmStart, pmEnd := monthRange(mStart.AddDate(0, 0, -1))
	statuses := entity.RevenueStatuses()

	// ── Fan-out: consultas independientes, barrera de "todas completas" ───────
	yearCh := make(chan ordersResult, 1)
	priorYearCh := make(chan ordersResult, 1)
	monthCh := make(chan ordersResult, 1)
	priorMonthCh := make(chan ordersResult, 1)
	linesCh := make(chan linesResult, 1)
	productsCh := make(chan productsResult, 1)
	customersCh := make(chan customersResult, 1)

	go func() {
		rows, err := c.repo.GetOrdersInRange(ctx, statuses, yStart, yEnd)
		yearCh <- ordersResult{rows, err}
	}()
	go func() {
		rows, err := c.repo.GetOrdersInRange(ctx, statuses, pStart, pEnd)
		priorYearCh <- ordersResult{rows, err}
	}()
	go func() {
		rows, err := c.repo.GetOrdersInRange(ctx, statuses, mStart, mEnd)
		monthCh <- ordersResult{rows, err}
	}()
	go func() {
		rows, err := c.repo.GetOrdersInRange(ctx, statuses, pmStart, pmEnd)
		priorMonthCh <- ordersResult{rows, err}
	}()
	go func() {
		rows, err := c.repo.GetOrderLinesInRange(ctx, yStart, yEnd)
		linesCh <- linesResult{rows, err}
	}()
	go func() {
		rows, err := c.repo.GetProducts(ctx)
		productsCh <- productsResult{rows, err}
	}()
	go func() {
		rows, err := c.repo.GetCustomers(ctx)
		customersCh <- customersResult{rows, err}
	}()

	yearRes := <-yearCh
	priorYearRes := <-priorYearCh
	monthRes := <-monthCh
	priorMonthRes := <-priorMonthCh
	linesRes := <-linesCh
	productsRes := <-productsCh
	customersRes := <-customersCh

	// ── Merge con degradación por faceta ──────────────────────────────────────
	rep := emptyReport(now, year)

	if yearRes.err != nil {
		c.warn("monthly_sales", yearRes.err)
	} else {
		buckets := MonthlySales(yearRes.rows, c.h)
		rep.MonthlySales = buckets
		rep.ChannelPerformance = ChannelPerformance(yearRes.rows)
		rep.MonthlyCosts = MonthlyCosts(buckets)
		rep.MonthlyProfit = MonthlyProfit(buckets)
	}

	// Comparativo anual: requiere ambos años; con uno solo la faceta queda nil.
	if yearRes.err != nil || priorYearRes.err != nil {
		c.warn("year_comparison", firstErr(yearRes.err, priorYearRes.err))
	} else {
		rep.YearComparison = YearComparison(year, year-1, yearRes.rows, priorYearRes.rows)
	}

	if linesRes.err != nil {
		c.warn("top_products", linesRes.err)
	} else {
		rep.TopProducts = TopProducts(linesRes.rows, defaultTopProducts)
		rep.CategorySales = CategorySales(linesRes.rows)
		rep.ProductMargins = ProductMargins(linesRes.rows, defaultProductMargins, c.h)
	}

	if productsRes.err != nil {
		c.warn("inventory_status", productsRes.err)
	} else {
		rep.InventoryStatus = InventoryStatus(productsRes.rows)
		rep.ProductStatus = ProductStatus(productsRes.rows)
	}

	if linesRes.err == nil && productsRes.err == nil {
		rep.InventoryTurnover = InventoryTurnover(linesRes.rows, productsRes.rows)
	}

	activeCustomers := 0
	if customersRes.err != nil {
		c.warn("customer_segments", customersRes.err)
	} else {
		rep.CustomerSegments = CustomerSegments(customersRes.rows)
		rep.TopCustomers = TopCustomers(customersRes.rows, defaultTopCustomers)
		activeCustomers = ActiveCustomerCount(customersRes.rows)
	}

	if monthRes.err != nil || priorMonthRes.err != nil {
		c.warn("key_metrics", firstErr(monthRes.err, priorMonthRes.err))
	} else {
		rep.KeyMetrics = KeyMetrics(monthRes.rows, priorMonthRes.rows, activeCustomers, c.h)
	}

	return rep
}

// warn registra la degradación de una faceta sin interrumpir la composición.
func (c *Composer) warn(facet string, err error) {
	if c.log == nil {
		return
	}
	c.log.Warn().Err(err).Str("facet", facet).Msg("consulta fallida; la faceta degrada a su valor vacío")
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// emptyReport reporte con todas las facetas en su valor por defecto: slices
// vacíos (no nil, para serializar [] y no null), métricas en cero y
// comparativo anual ausente.
func emptyReport(now time.Time, year int) *dto.BusinessReportDTO {
	return &dto.BusinessReportDTO{
		GeneratedAt:        now,
		Year:               year,
		MonthlySales:       []dto.MonthlyBucketDTO{},
		TopProducts:        []dto.TopProductDTO{},
		CategorySales:      []dto.CategorySummaryDTO{},
		YearComparison:     nil,
		KeyMetrics:         emptyKeyMetrics(),
		InventoryStatus:    []dto.InventoryStatusDTO{},
		ChannelPerformance: []dto.ChannelSummaryDTO{},
		ProductStatus:      []dto.ProductStatusDTO{},
		InventoryTurnover:  []dto.TurnoverDTO{},
		ProductMargins:     []dto.ProductMarginDTO{},
		CustomerSegments:   []dto.CustomerSegmentDTO{},
		TopCustomers:       []dto.TopCustomerDTO{},
		MonthlyCosts:       []dto.MonthlyCostDTO{},
		MonthlyProfit:      []dto.MonthlyProfitDTO{},
	}
}

func emptyKeyMetrics() dto.KeyMetricsDTO {
	return dto.KeyMetricsDTO{
		TotalSales:        decimal.Zero,
		GrowthPct:         decimal.Zero,
		AverageTicket:     decimal.Zero,
		ProfitMarginPct:   decimal.Zero,
		ConversionRatePct: decimal.Zero,
	}
}
