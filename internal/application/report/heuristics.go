package report

import "github.com/shopspring/decimal"

// Heuristics constantes de estimación usadas por los agregadores.
//
// Son aproximaciones configurables, no reglas contables: el costo se estima
// como fracción fija del subtotal porque el sistema no lleva costo real por
// producto, y el margen/conversión se reportan como constantes del negocio.
// Mantenerlas nombradas permite sustituirlas por cálculos reales sin tocar la
// estructura de los agregadores.
type Heuristics struct {
	CostRatio       decimal.Decimal // fracción del subtotal que se asume como costo (0.60)
	ProfitMarginPct decimal.Decimal // margen de utilidad reportado en KPIs (40)
	ConversionPct   decimal.Decimal // tasa de conversión reportada en KPIs (3.8)
	NewCustomerPct  decimal.Decimal // % de clientes activos contados como nuevos (25; el resto son recurrentes)
}

// DefaultHeuristics valores por defecto de las heurísticas.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		CostRatio:       decimal.NewFromFloat(0.60),
		ProfitMarginPct: decimal.NewFromInt(40),
		ConversionPct:   decimal.NewFromFloat(3.8),
		NewCustomerPct:  decimal.NewFromInt(25),
	}
}
