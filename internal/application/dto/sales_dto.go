package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea solicitada al crear un pedido.
type OrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	TrackingNumber  string             `json:"tracking_number"`
	Type            string             `json:"type"`
	BranchID        string             `json:"branch_id"`
	CustomerID      string             `json:"customer_id,omitempty"`
	ShippingAddress string             `json:"shipping_address,omitempty"`
	Items           []OrderItemRequest `json:"items"`
}

// UpdateOrderRequest body para PUT /api/orders/:id (campos opcionales).
// Un cambio de DiscountAmount recalcula TotalAmount desde el subtotal congelado.
type UpdateOrderRequest struct {
	Status          *string          `json:"status,omitempty"`
	DiscountAmount  *decimal.Decimal `json:"discount_amount,omitempty"`
	ShippingAddress *string          `json:"shipping_address,omitempty"`
}

// OrderItemResponse línea de pedido persistida.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse representación completa de un pedido.
type OrderResponse struct {
	ID              string              `json:"id"`
	TrackingNumber  string              `json:"tracking_number"`
	Type            string              `json:"type"`
	Status          string              `json:"status"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	DiscountAmount  decimal.Decimal     `json:"discount_amount"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	TotalItems      int64               `json:"total_items"`
	ShippingAddress string              `json:"shipping_address,omitempty"`
	CustomerID      string              `json:"customer_id,omitempty"`
	BranchID        string              `json:"branch_id"`
	Items           []OrderItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// ApplyCouponRequest body para POST /api/orders/:id/apply-coupon.
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

// CreateCouponRequest body para POST /api/coupons. Exactamente uno de
// DiscountPercentage o DiscountAmount debe venir definido.
type CreateCouponRequest struct {
	Code               string           `json:"code"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
	DiscountAmount     *decimal.Decimal `json:"discount_amount,omitempty"`
	MaxUses            *int64           `json:"max_uses,omitempty"`
	ExpiresAt          string           `json:"expires_at,omitempty"`
}

// UpdateCouponRequest body para PUT /api/coupons/:id (campos opcionales).
type UpdateCouponRequest struct {
	Code      *string `json:"code,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
	MaxUses   *int64  `json:"max_uses,omitempty"`
	ExpiresAt *string `json:"expires_at,omitempty"`
}

// CouponResponse representación de un cupón.
type CouponResponse struct {
	ID                 string           `json:"id"`
	Code               string           `json:"code"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
	DiscountAmount     *decimal.Decimal `json:"discount_amount,omitempty"`
	MaxUses            *int64           `json:"max_uses,omitempty"`
	CurrentUses        int64            `json:"current_uses"`
	IsActive           bool             `json:"is_active"`
	ExpiresAt          string           `json:"expires_at,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}
