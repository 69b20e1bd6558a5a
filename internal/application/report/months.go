package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etiquetas fijas de los 12 meses, en orden calendario. Todo eje temporal
// mensual se siembra con estas etiquetas aunque no haya pedidos en el mes.
var monthLabels = [12]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

var hundred = decimal.NewFromInt(100)

// MonthLabels devuelve una copia de las 12 etiquetas de mes.
func MonthLabels() []string {
	labels := make([]string, 12)
	copy(labels, monthLabels[:])
	return labels
}

// amountOrZero coacciona un monto ausente o no numérico a cero.
// Ningún agregador falla por una fila con monto inválido.
func amountOrZero(d decimal.NullDecimal) decimal.Decimal {
	if d.Valid {
		return d.Decimal
	}
	return decimal.Zero
}

// roundedPct devuelve round(part/total × 100) como entero; 0 si total no es positivo.
func roundedPct(part, total decimal.Decimal) int {
	if !total.IsPositive() {
		return 0
	}
	return int(part.Div(total).Mul(hundred).Round(0).IntPart())
}

// yearRange devuelve los límites inclusivos del año calendario:
// 1 de enero 00:00:00 – 31 de diciembre 23:59:59.999...
func yearRange(year int, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	return start, end
}

// monthRange devuelve los límites inclusivos del mes calendario de t.
func monthRange(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
