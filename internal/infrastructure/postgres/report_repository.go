package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/reportes-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura que alimentan los agregadores de
// reportes. No agrega en SQL: devuelve filas crudas y deja el plegado a las
// funciones puras del paquete report, que son las que fijan las reglas de
// coacción de montos y valores por defecto.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de lectura de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetOrdersInRange devuelve los pedidos con estado en statuses y fecha en
// [start, end]. Total y subtotal viajan como NULL si la fila no los tiene;
// la coacción a cero es responsabilidad del agregador, no de la consulta.
func (r *ReportRepo) GetOrdersInRange(
	ctx context.Context,
	statuses []string,
	start, end time.Time,
) ([]repository.OrderRow, error) {
	const query = `
	SELECT
	    o.id::TEXT,
	    o.date,
	    o.total,
	    o.subtotal,
	    o.status,
	    COALESCE(o.payment_method, '') AS payment_method
	FROM orders o
	WHERE o.status = ANY($1)
	  AND o.date BETWEEN $2 AND $3
	ORDER BY o.date`

	rows, err := r.pool.Query(ctx, query, statuses, start, end)
	if err != nil {
		return nil, fmt.Errorf("report.GetOrdersInRange: %w", err)
	}
	defer rows.Close()

	results := []repository.OrderRow{}
	for rows.Next() {
		var row repository.OrderRow
		if err := rows.Scan(
			&row.ID,
			&row.Date,
			&row.Total,
			&row.Subtotal,
			&row.Status,
			&row.PaymentMethod,
		); err != nil {
			return nil, fmt.Errorf("report.GetOrdersInRange scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report.GetOrdersInRange rows: %w", err)
	}
	return results, nil
}

// GetOrderLinesInRange devuelve las líneas de pedidos completados/entregados
// del rango con la categoría resuelta vía el join de un salto
// línea → producto → categoría. La categoría viaja vacía cuando el join es
// nulo; la etiqueta de respaldo la pone el agregador.
func (r *ReportRepo) GetOrderLinesInRange(
	ctx context.Context,
	start, end time.Time,
) ([]repository.OrderLineRow, error) {
	const query = `
	SELECT
	    l.product_name,
	    l.quantity,
	    l.unit_price,
	    l.subtotal,
	    COALESCE(c.name, '') AS category
	FROM order_lines l
	JOIN orders o       ON o.id = l.order_id
	LEFT JOIN products p  ON p.id = l.product_id
	LEFT JOIN categories c ON c.id = p.category_id
	WHERE o.status IN ('completed', 'delivered')
	  AND o.date BETWEEN $1 AND $2
	ORDER BY o.date, l.id`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("report.GetOrderLinesInRange: %w", err)
	}
	defer rows.Close()

	results := []repository.OrderLineRow{}
	for rows.Next() {
		var row repository.OrderLineRow
		if err := rows.Scan(
			&row.ProductName,
			&row.Quantity,
			&row.UnitPrice,
			&row.Subtotal,
			&row.Category,
		); err != nil {
			return nil, fmt.Errorf("report.GetOrderLinesInRange scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report.GetOrderLinesInRange rows: %w", err)
	}
	return results, nil
}

// GetProducts devuelve todos los productos con su estado de stock y categoría.
func (r *ReportRepo) GetProducts(ctx context.Context) ([]repository.ProductRow, error) {
	const query = `
	SELECT
	    p.name,
	    COALESCE(c.name, '') AS category,
	    p.stock_state
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	ORDER BY p.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.GetProducts: %w", err)
	}
	defer rows.Close()

	results := []repository.ProductRow{}
	for rows.Next() {
		var row repository.ProductRow
		if err := rows.Scan(&row.Name, &row.Category, &row.StockState); err != nil {
			return nil, fmt.Errorf("report.GetProducts scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report.GetProducts rows: %w", err)
	}
	return results, nil
}

// GetCustomers devuelve todos los clientes con sus acumulados de compra.
// Usa COALESCE para que los acumulados nulos lleguen como cero.
func (r *ReportRepo) GetCustomers(ctx context.Context) ([]repository.CustomerRow, error) {
	const query = `
	SELECT
	    c.name,
	    COALESCE(c.orders_count, 0) AS orders_count,
	    COALESCE(c.total_spent, 0)  AS total_spent,
	    COALESCE(c.active, FALSE)   AS active
	FROM customers c
	ORDER BY c.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.GetCustomers: %w", err)
	}
	defer rows.Close()

	results := []repository.CustomerRow{}
	for rows.Next() {
		var row repository.CustomerRow
		if err := rows.Scan(&row.Name, &row.Orders, &row.TotalSpent, &row.Active); err != nil {
			return nil, fmt.Errorf("report.GetCustomers scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report.GetCustomers rows: %w", err)
	}
	return results, nil
}
