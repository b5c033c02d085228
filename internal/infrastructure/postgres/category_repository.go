package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría. Nombre duplicado -> domain.ErrDuplicate.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, ` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	args := append([]any{category.ID, category.Name, category.Description}, auditValues(&category.Audit)...)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID (excluye borradas).
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, name, description, ` + auditColumns + `
		FROM categories WHERE id = $1 AND is_deleted = FALSE`
	return r.getOne(query, id)
}

// GetByName obtiene una categoría por nombre (excluye borradas).
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `
		SELECT id, name, description, ` + auditColumns + `
		FROM categories WHERE name = $1 AND is_deleted = FALSE`
	return r.getOne(query, name)
}

func (r *CategoryRepo) getOne(query string, arg any) (*entity.Category, error) {
	var c entity.Category
	dest := append([]any{&c.ID, &c.Name, &c.Description}, auditDest(&c.Audit)...)
	err := r.q.QueryRow(context.Background(), query, arg).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, updated_at = $4, updated_by = $5
		WHERE id = $1 AND is_deleted = FALSE`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.UpdatedAt, category.UpdatedByID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista categorías con paginación (excluye borradas).
func (r *CategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	query := `
		SELECT id, name, description, ` + auditColumns + `
		FROM categories WHERE is_deleted = FALSE ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		dest := append([]any{&c.ID, &c.Name, &c.Description}, auditDest(&c.Audit)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete hace borrado lógico de una categoría.
func (r *CategoryRepo) Delete(id string, deletedBy string) error {
	query := `
		UPDATE categories SET is_deleted = TRUE, deleted_at = now(), deleted_by = $2,
			updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_deleted = FALSE`
	if _, err := r.q.Exec(context.Background(), query, id, deletedBy); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
