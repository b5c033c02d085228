package entity

import "time"

// StockBalance stock actual de un producto en una sucursal (tabla intermedia/materializada).
// Clave compuesta (branch_id, product_id). Quantity nunca es negativa: las salidas
// que exceden el stock disponible se recortan a cero en el proyector.
type StockBalance struct {
	BranchID  string
	ProductID string
	Quantity  int64
	UpdatedAt time.Time
}
