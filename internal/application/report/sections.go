package report

import "github.com/jhoicas/reportes-api/internal/application/dto"

// Tipos de reporte que ofrece la vista.
const (
	TypeSales     = "ventas"
	TypeInventory = "inventario"
	TypeProducts  = "productos"
	TypeCustomers = "clientes"
	TypeFinancial = "financiero"
)

// Secciones (facetas) del reporte compuesto. Los nombres coinciden con los
// campos JSON de BusinessReportDTO.
const (
	SectionMonthlySales       = "monthly_sales"
	SectionTopProducts        = "top_products"
	SectionCategorySales      = "category_sales"
	SectionYearComparison     = "year_comparison"
	SectionKeyMetrics         = "key_metrics"
	SectionInventoryStatus    = "inventory_status"
	SectionChannelPerformance = "channel_performance"
	SectionProductStatus      = "product_status"
	SectionInventoryTurnover  = "inventory_turnover"
	SectionProductMargins     = "product_margins"
	SectionCustomerSegments   = "customer_segments"
	SectionTopCustomers       = "top_customers"
	SectionMonthlyCosts       = "monthly_costs"
	SectionMonthlyProfit      = "monthly_profit"
)

// sectionsByType tabla tipo-de-reporte → secciones que la vista renderiza
// para ese tipo.
var sectionsByType = map[string][]string{
	TypeSales: {
		SectionKeyMetrics, SectionMonthlySales, SectionTopProducts,
		SectionCategorySales, SectionYearComparison, SectionChannelPerformance,
	},
	TypeInventory: {
		SectionInventoryStatus, SectionProductStatus, SectionInventoryTurnover,
	},
	TypeProducts: {
		SectionTopProducts, SectionProductMargins, SectionProductStatus,
		SectionCategorySales,
	},
	TypeCustomers: {
		SectionCustomerSegments, SectionTopCustomers, SectionKeyMetrics,
	},
	TypeFinancial: {
		SectionKeyMetrics, SectionMonthlyCosts, SectionMonthlyProfit,
		SectionYearComparison,
	},
}

// ReportTypes lista los tipos de reporte soportados.
func ReportTypes() []string {
	return []string{TypeSales, TypeInventory, TypeProducts, TypeCustomers, TypeFinancial}
}

// SectionsFor devuelve las secciones del tipo de reporte; ok es false si el
// tipo no existe.
func SectionsFor(reportType string) (sections []string, ok bool) {
	sections, ok = sectionsByType[reportType]
	return sections, ok
}

// Prune devuelve una copia del reporte con las facetas que el tipo de reporte
// no renderiza puestas en su valor vacío. Un tipo desconocido devuelve el
// reporte completo sin recortar.
func Prune(r *dto.BusinessReportDTO, reportType string) *dto.BusinessReportDTO {
	sections, ok := sectionsByType[reportType]
	if !ok {
		return r
	}
	keep := make(map[string]bool, len(sections))
	for _, s := range sections {
		keep[s] = true
	}

	pruned := *r
	if !keep[SectionMonthlySales] {
		pruned.MonthlySales = []dto.MonthlyBucketDTO{}
	}
	if !keep[SectionTopProducts] {
		pruned.TopProducts = []dto.TopProductDTO{}
	}
	if !keep[SectionCategorySales] {
		pruned.CategorySales = []dto.CategorySummaryDTO{}
	}
	if !keep[SectionYearComparison] {
		pruned.YearComparison = nil
	}
	if !keep[SectionKeyMetrics] {
		pruned.KeyMetrics = emptyKeyMetrics()
	}
	if !keep[SectionInventoryStatus] {
		pruned.InventoryStatus = []dto.InventoryStatusDTO{}
	}
	if !keep[SectionChannelPerformance] {
		pruned.ChannelPerformance = []dto.ChannelSummaryDTO{}
	}
	if !keep[SectionProductStatus] {
		pruned.ProductStatus = []dto.ProductStatusDTO{}
	}
	if !keep[SectionInventoryTurnover] {
		pruned.InventoryTurnover = []dto.TurnoverDTO{}
	}
	if !keep[SectionProductMargins] {
		pruned.ProductMargins = []dto.ProductMarginDTO{}
	}
	if !keep[SectionCustomerSegments] {
		pruned.CustomerSegments = []dto.CustomerSegmentDTO{}
	}
	if !keep[SectionTopCustomers] {
		pruned.TopCustomers = []dto.TopCustomerDTO{}
	}
	if !keep[SectionMonthlyCosts] {
		pruned.MonthlyCosts = []dto.MonthlyCostDTO{}
	}
	if !keep[SectionMonthlyProfit] {
		pruned.MonthlyProfit = []dto.MonthlyProfitDTO{}
	}
	return &pruned
}
