package entity

import "github.com/shopspring/decimal"

// Tipos de pedido.
const (
	OrderTypeOnline  = "ONLINE"
	OrderTypeInStore = "IN_STORE"
	OrderTypePhone   = "PHONE"
)

// Estados de pedido. Las transiciones no están restringidas: cualquier estado
// puede seguir a cualquier otro (la legalidad la decide el caller).
const (
	OrderStatusPending    = "PENDING"
	OrderStatusConfirmed  = "CONFIRMED"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
	OrderStatusRefunded   = "REFUNDED"
)

// ValidOrderType indica si el tipo de pedido es uno de los soportados.
func ValidOrderType(t string) bool {
	switch t {
	case OrderTypeOnline, OrderTypeInStore, OrderTypePhone:
		return true
	}
	return false
}

// ValidOrderStatus indica si el estado es uno de los definidos.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// Order cabecera de pedido. Subtotal y TotalItems se calculan al crear y quedan
// congelados; TotalAmount solo se recalcula cuando cambia DiscountAmount.
type Order struct {
	ID                  string
	TrackingNumber      string // único
	Type                string
	Status              string
	Subtotal            decimal.Decimal
	DiscountAmount      decimal.Decimal
	TotalAmount         decimal.Decimal // Subtotal - DiscountAmount
	TotalItems          int64
	ShippingAddress     string
	CustomerID          string // opcional
	FulfillmentBranchID string
	Items               []OrderItem
	Audit
}

// RecalculateTotal recalcula TotalAmount a partir del subtotal congelado.
func (o *Order) RecalculateTotal() {
	o.TotalAmount = o.Subtotal.Sub(o.DiscountAmount)
}

// OrderItem línea de pedido. UnitPrice es el precio copiado al momento de la venta:
// cambios posteriores del catálogo no afectan pedidos históricos.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	Audit
}
