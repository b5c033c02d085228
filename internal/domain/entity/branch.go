package entity

// Branch representa una sucursal donde se almacena inventario y se despachan pedidos.
type Branch struct {
	ID      string
	Name    string
	Address string
	Phone   string
	CanShip bool
	Audit
}
