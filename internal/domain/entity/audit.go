package entity

import "time"

// Audit campos de auditoría y borrado lógico comunes a todas las entidades.
// Se embebe en cada entidad en lugar de duplicar los campos (equivalente a un mixin).
type Audit struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedByID string
	UpdatedByID string
	IsDeleted   bool
	DeletedAt   *time.Time
	DeletedByID string
}

// NewAudit inicializa los campos de auditoría para una entidad nueva.
func NewAudit(now time.Time, createdBy string) Audit {
	return Audit{
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedByID: createdBy,
	}
}

// Touch actualiza la marca de modificación.
func (a *Audit) Touch(now time.Time, updatedBy string) {
	a.UpdatedAt = now
	a.UpdatedByID = updatedBy
}

// SoftDelete marca la entidad como eliminada sin borrar la fila (conserva historial).
func (a *Audit) SoftDelete(now time.Time, deletedBy string) {
	a.IsDeleted = true
	a.DeletedAt = &now
	a.DeletedByID = deletedBy
	a.Touch(now, deletedBy)
}
