package report_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers compartidos por los tests del núcleo de agregación
// ──────────────────────────────────────────────────────────────────────────────

// dec envuelve un monto válido en NullDecimal.
func dec(v float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(v), Valid: true}
}

// nullDec monto ausente (NULL en la fila cruda).
func nullDec() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

// orderOn pedido mínimo con fecha y total.
func orderOn(date time.Time, total float64) repository.OrderRow {
	return repository.OrderRow{
		ID:     "ord-test",
		Date:   date,
		Total:  dec(total),
		Status: "completed",
	}
}

// line línea de pedido con producto, cantidad, precio unitario y categoría.
// El subtotal registrado se fija a qty × unitPrice salvo que el test lo pise.
func line(product string, qty, unitPrice float64, category string) repository.OrderLineRow {
	return repository.OrderLineRow{
		ProductName: product,
		Quantity:    dec(qty),
		UnitPrice:   dec(unitPrice),
		Subtotal:    dec(qty * unitPrice),
		Category:    category,
	}
}

func mustDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}
