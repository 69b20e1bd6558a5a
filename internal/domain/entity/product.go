package entity

// Estados de stock de un producto.
const (
	StockAvailable  = "available"
	StockLow        = "low-stock"
	StockOut        = "out-of-stock"
)

// CategoryFallback etiqueta usada cuando el producto no tiene categoría asociada.
const CategoryFallback = "Sin categoría"
