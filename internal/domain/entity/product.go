package entity

import "github.com/shopspring/decimal"

// Product representa un producto o SKU del catálogo.
// El stock se maneja por sucursal en StockBalance, no aquí.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta vigente
	CategoryID  string
	Audit
}

// ProductImage imagen asociada a un producto; Position define el orden en galería.
type ProductImage struct {
	ID        string
	ProductID string
	URL       string
	Position  int
	IsPrimary bool
	Audit
}
