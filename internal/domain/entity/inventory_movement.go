package entity

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada (compras, devoluciones)
	MovementTypeOUT        = "OUT"        // salida (ventas)
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre sucursales
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual
)

// ValidMovementType indica si el tipo de movimiento es uno de los soportados.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeTRANSFER, MovementTypeADJUSTMENT:
		return true
	}
	return false
}

// InventoryMovement registro inmutable del libro de movimientos de inventario.
// Una vez creado no se modifica para "deshacer" su efecto sobre el stock;
// revertir requiere un movimiento compensatorio nuevo.
type InventoryMovement struct {
	ID        string
	Type      string
	Quantity  int64 // siempre positiva; el signo lo da el tipo
	Notes     string
	ProductID string
	BranchID  string
	OrderID   string // opcional: pedido que originó el movimiento
	Audit
}
