package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateShipmentRequest body para POST /api/shipments.
type CreateShipmentRequest struct {
	OrderID               string          `json:"order_id"`
	OriginBranchID        string          `json:"origin_branch_id"`
	TrackingNumber        string          `json:"tracking_number"`
	Carrier               string          `json:"carrier"`
	ShippingCost          decimal.Decimal `json:"shipping_cost"`
	ShippingAddress       string          `json:"shipping_address"`
	EstimatedDeliveryDate *time.Time      `json:"estimated_delivery_date,omitempty"`
	Notes                 string          `json:"notes,omitempty"`
}

// UpdateShipmentRequest body para PUT /api/shipments/:id (campos opcionales).
type UpdateShipmentRequest struct {
	Status                *string    `json:"status,omitempty"`
	Carrier               *string    `json:"carrier,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	ShippedDate           *time.Time `json:"shipped_date,omitempty"`
	DeliveredDate         *time.Time `json:"delivered_date,omitempty"`
	Notes                 *string    `json:"notes,omitempty"`
}

// ShipmentResponse representación de un envío.
type ShipmentResponse struct {
	ID                    string          `json:"id"`
	OrderID               string          `json:"order_id"`
	OriginBranchID        string          `json:"origin_branch_id"`
	TrackingNumber        string          `json:"tracking_number"`
	Carrier               string          `json:"carrier"`
	Status                string          `json:"status"`
	ShippingCost          decimal.Decimal `json:"shipping_cost"`
	ShippingAddress       string          `json:"shipping_address"`
	EstimatedDeliveryDate *time.Time      `json:"estimated_delivery_date,omitempty"`
	ShippedDate           *time.Time      `json:"shipped_date,omitempty"`
	DeliveredDate         *time.Time      `json:"delivered_date,omitempty"`
	Notes                 string          `json:"notes,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}
