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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// branch_id es NULLable: los clientes web no pertenecen a ninguna sucursal.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Email duplicado -> domain.ErrEmailAlreadyExists.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, first_name, last_name, phone, password_hash, is_active, role, branch_id, ` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	branchID := (*string)(nil)
	if user.BranchID != "" {
		branchID = &user.BranchID
	}
	args := append([]any{
		user.ID, user.Email, user.FirstName, user.LastName, user.Phone,
		user.PasswordHash, user.IsActive, user.Role, branchID,
	}, auditValues(&user.Audit)...)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID (excluye borrados).
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, email, first_name, last_name, phone, password_hash, is_active, role, branch_id, ` + auditColumns + `
		FROM users WHERE id = $1 AND is_deleted = FALSE`
	return r.getOne(query, id)
}

// FindByEmail obtiene un usuario por email (excluye borrados).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, email, first_name, last_name, phone, password_hash, is_active, role, branch_id, ` + auditColumns + `
		FROM users WHERE email = $1 AND is_deleted = FALSE`
	return r.getOne(query, email)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	var branchID *string
	dest := append([]any{
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone,
		&u.PasswordHash, &u.IsActive, &u.Role, &branchID,
	}, auditDest(&u.Audit)...)
	err := r.q.QueryRow(context.Background(), query, arg).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if branchID != nil {
		u.BranchID = *branchID
	}
	return &u, nil
}

// Update actualiza un usuario existente.
func (r *UserRepo) Update(user *entity.User) error {
	branchID := (*string)(nil)
	if user.BranchID != "" {
		branchID = &user.BranchID
	}
	query := `
		UPDATE users SET first_name = $2, last_name = $3, phone = $4, password_hash = $5,
			is_active = $6, role = $7, branch_id = $8, updated_at = $9, updated_by = $10
		WHERE id = $1 AND is_deleted = FALSE`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.FirstName, user.LastName, user.Phone, user.PasswordHash,
		user.IsActive, user.Role, branchID, user.UpdatedAt, user.UpdatedByID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista usuarios con paginación (excluye borrados).
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, email, first_name, last_name, phone, password_hash, is_active, role, branch_id, ` + auditColumns + `
		FROM users WHERE is_deleted = FALSE ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var branchID *string
		dest := append([]any{
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone,
			&u.PasswordHash, &u.IsActive, &u.Role, &branchID,
		}, auditDest(&u.Audit)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if branchID != nil {
			u.BranchID = *branchID
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete hace borrado lógico de un usuario.
func (r *UserRepo) Delete(id string, deletedBy string) error {
	query := `
		UPDATE users SET is_deleted = TRUE, deleted_at = now(), deleted_by = $2,
			updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_deleted = FALSE`
	if _, err := r.q.Exec(context.Background(), query, id, deletedBy); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
