package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// auditColumns columnas de auditoría/borrado lógico comunes a todas las tablas,
// en el orden que esperan auditValues y auditDest. Las columnas *_by son TEXT
// NOT NULL DEFAULT '' (cadena vacía = sin usuario registrado).
const auditColumns = "created_at, updated_at, created_by, updated_by, is_deleted, deleted_at, deleted_by"

// auditValues devuelve los argumentos de INSERT para las columnas de auditoría.
func auditValues(a *entity.Audit) []any {
	return []any{a.CreatedAt, a.UpdatedAt, a.CreatedByID, a.UpdatedByID, a.IsDeleted, a.DeletedAt, a.DeletedByID}
}

// auditDest devuelve los destinos de Scan para las columnas de auditoría.
func auditDest(a *entity.Audit) []any {
	return []any{&a.CreatedAt, &a.UpdatedAt, &a.CreatedByID, &a.UpdatedByID, &a.IsDeleted, &a.DeletedAt, &a.DeletedByID}
}
