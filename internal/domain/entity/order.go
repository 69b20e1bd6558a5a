package entity

// Estados del ciclo de vida de un pedido.
//
// Solo los pedidos completados o entregados cuentan para ingresos; los demás
// estados existen para el flujo operativo (picking, despacho) y se excluyen
// de todos los agregados monetarios.
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in-progress"
	OrderStatusCompleted  = "completed"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// RevenueStatuses estados de pedido que cuentan como venta efectiva.
func RevenueStatuses() []string {
	return []string{OrderStatusCompleted, OrderStatusDelivered}
}
