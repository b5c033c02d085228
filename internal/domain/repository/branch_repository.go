package repository

import "github.com/tu-usuario/commerce-pro/internal/domain/entity"

// BranchRepository define el puerto de persistencia para Branch (DIP).
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	Update(branch *entity.Branch) error
	List(limit, offset int) ([]*entity.Branch, error)
	// Delete es borrado lógico: marca is_deleted, no elimina la fila.
	Delete(id string, deletedBy string) error
}
