package entity

// Roles de usuario en el sistema.
const (
	RoleSuperAdmin    = "SUPER_ADMIN"    // dueño: ve todas las sucursales y finanzas
	RoleBranchManager = "BRANCH_MANAGER" // encargado: controla SU sucursal y SU stock
	RoleSalesAgent    = "SALES_AGENT"    // vendedor: vende en POS y atiende mostrador
	RoleLogistics     = "LOGISTICS"      // logística: prepara paquetes
	RoleCustomer      = "CUSTOMER"       // comprador web: solo ve sus pedidos
)

// ValidRole indica si el rol es uno de los definidos.
func ValidRole(r string) bool {
	switch r {
	case RoleSuperAdmin, RoleBranchManager, RoleSalesAgent, RoleLogistics, RoleCustomer:
		return true
	}
	return false
}

// User usuario del back office o cliente web.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	PasswordHash string
	IsActive     bool
	Role         string
	BranchID     string // opcional: sucursal a la que pertenece el empleado
	Audit
}
