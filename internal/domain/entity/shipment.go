package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de envío.
const (
	ShipmentStatusPending        = "PENDING"
	ShipmentStatusProcessing     = "PROCESSING"
	ShipmentStatusInTransit      = "IN_TRANSIT"
	ShipmentStatusOutForDelivery = "OUT_FOR_DELIVERY"
	ShipmentStatusDelivered      = "DELIVERED"
	ShipmentStatusFailed         = "FAILED"
	ShipmentStatusReturned       = "RETURNED"
)

// ValidShipmentStatus indica si el estado de envío es uno de los definidos.
func ValidShipmentStatus(s string) bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusProcessing, ShipmentStatusInTransit,
		ShipmentStatusOutForDelivery, ShipmentStatusDelivered, ShipmentStatusFailed,
		ShipmentStatusReturned:
		return true
	}
	return false
}

// Shipment información de envío de un pedido (uno por pedido).
type Shipment struct {
	ID                    string
	TrackingNumber        string // único
	Carrier               string // "DHL", "FedEx", "UPS", ...
	Status                string
	ShippingCost          decimal.Decimal
	ShippingAddress       string
	EstimatedDeliveryDate *time.Time
	ShippedDate           *time.Time
	DeliveredDate         *time.Time
	Notes                 string
	OrderID               string // único: un envío por pedido
	OriginBranchID        string
	Audit
}
