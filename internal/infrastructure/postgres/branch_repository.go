package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador de persistencia para sucursales. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Create persiste una nueva sucursal.
func (r *BranchRepo) Create(branch *entity.Branch) error {
	query := `
		INSERT INTO branches (id, name, address, phone, can_ship, ` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	args := append([]any{branch.ID, branch.Name, branch.Address, branch.Phone, branch.CanShip},
		auditValues(&branch.Audit)...)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID (excluye borradas).
func (r *BranchRepo) GetByID(id string) (*entity.Branch, error) {
	query := `
		SELECT id, name, address, phone, can_ship, ` + auditColumns + `
		FROM branches WHERE id = $1 AND is_deleted = FALSE`
	var b entity.Branch
	dest := append([]any{&b.ID, &b.Name, &b.Address, &b.Phone, &b.CanShip}, auditDest(&b.Audit)...)
	err := r.q.QueryRow(context.Background(), query, id).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// Update actualiza una sucursal existente.
func (r *BranchRepo) Update(branch *entity.Branch) error {
	query := `
		UPDATE branches SET name = $2, address = $3, phone = $4, can_ship = $5,
			updated_at = $6, updated_by = $7
		WHERE id = $1 AND is_deleted = FALSE`
	_, err := r.q.Exec(context.Background(), query,
		branch.ID, branch.Name, branch.Address, branch.Phone, branch.CanShip,
		branch.UpdatedAt, branch.UpdatedByID,
	)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	return nil
}

// List lista sucursales con paginación (excluye borradas).
func (r *BranchRepo) List(limit, offset int) ([]*entity.Branch, error) {
	query := `
		SELECT id, name, address, phone, can_ship, ` + auditColumns + `
		FROM branches WHERE is_deleted = FALSE ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		dest := append([]any{&b.ID, &b.Name, &b.Address, &b.Phone, &b.CanShip}, auditDest(&b.Audit)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete hace borrado lógico de una sucursal.
func (r *BranchRepo) Delete(id string, deletedBy string) error {
	query := `
		UPDATE branches SET is_deleted = TRUE, deleted_at = now(), deleted_by = $2,
			updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_deleted = FALSE`
	if _, err := r.q.Exec(context.Background(), query, id, deletedBy); err != nil {
		return fmt.Errorf("delete branch: %w", err)
	}
	return nil
}
