package dto

import "time"

// CreateBranchRequest body para POST /api/branches.
type CreateBranchRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	CanShip *bool  `json:"can_ship,omitempty"` // por defecto true
}

// UpdateBranchRequest body para PUT /api/branches/:id (campos opcionales).
type UpdateBranchRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	CanShip *bool   `json:"can_ship,omitempty"`
}

// BranchResponse representación de una sucursal.
type BranchResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CanShip   bool      `json:"can_ship"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordMovementRequest body para POST /api/inventory/movements.
type RecordMovementRequest struct {
	Type      string `json:"type"`
	Quantity  int64  `json:"quantity"`
	ProductID string `json:"product_id"`
	BranchID  string `json:"branch_id"`
	OrderID   string `json:"order_id,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// MovementResponse representación de un movimiento registrado.
type MovementResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	ProductID string    `json:"product_id"`
	BranchID  string    `json:"branch_id"`
	OrderID   string    `json:"order_id,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StockBalanceResponse saldo actual de un producto en una sucursal.
type StockBalanceResponse struct {
	BranchID  string    `json:"branch_id"`
	ProductID string    `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}
