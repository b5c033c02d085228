package repository

import "github.com/tu-usuario/commerce-pro/internal/domain/entity"

// InventoryMovementRepository define el puerto de persistencia del libro de movimientos.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(id string) (*entity.InventoryMovement, error)
	// List filtra por sucursal y/o producto; cadena vacía = sin filtro.
	List(branchID, productID string, limit, offset int) ([]*entity.InventoryMovement, error)
	// Delete es borrado lógico; el efecto del movimiento sobre el stock NO se revierte.
	Delete(id string, deletedBy string) error
}
