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

var _ repository.CouponRepository = (*CouponRepo)(nil)

// CouponRepo implementación del puerto CouponRepository sobre PostgreSQL.
type CouponRepo struct {
	q Querier
}

// NewCouponRepository construye el adaptador de cupones. Pasar pool o tx (Querier).
func NewCouponRepository(q Querier) *CouponRepo {
	return &CouponRepo{q: q}
}

const couponSelect = `
	SELECT id, code, discount_percentage, discount_amount, max_uses, current_uses,
		is_active, expires_at, ` + auditColumns + `
	FROM coupons`

// Create persiste un cupón. Código duplicado -> domain.ErrDuplicate.
func (r *CouponRepo) Create(coupon *entity.Coupon) error {
	query := `
		INSERT INTO coupons (id, code, discount_percentage, discount_amount, max_uses,
			current_uses, is_active, expires_at, ` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	args := append([]any{
		coupon.ID, coupon.Code, coupon.DiscountPercentage, coupon.DiscountAmount,
		coupon.MaxUses, coupon.CurrentUses, coupon.IsActive, coupon.ExpiresAt,
	}, auditValues(&coupon.Audit)...)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert coupon: %w", err)
	}
	return nil
}

// GetByID obtiene un cupón por ID (excluye borrados).
func (r *CouponRepo) GetByID(id string) (*entity.Coupon, error) {
	return r.getOne(couponSelect+` WHERE id = $1 AND is_deleted = FALSE`, id)
}

// GetByCode obtiene un cupón por código (excluye borrados).
func (r *CouponRepo) GetByCode(code string) (*entity.Coupon, error) {
	return r.getOne(couponSelect+` WHERE code = $1 AND is_deleted = FALSE`, code)
}

// GetByCodeForUpdate obtiene un cupón por código bloqueando la fila hasta el fin
// de la transacción. Úsese solo dentro de un TxRunner.
func (r *CouponRepo) GetByCodeForUpdate(code string) (*entity.Coupon, error) {
	return r.getOne(couponSelect+` WHERE code = $1 AND is_deleted = FALSE FOR UPDATE`, code)
}

func (r *CouponRepo) getOne(query string, arg any) (*entity.Coupon, error) {
	c, err := scanCoupon(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get coupon: %w", err)
	}
	return c, nil
}

// Update actualiza un cupón (incluye el contador de usos).
func (r *CouponRepo) Update(coupon *entity.Coupon) error {
	query := `
		UPDATE coupons SET discount_percentage = $2, discount_amount = $3, max_uses = $4,
			current_uses = $5, is_active = $6, expires_at = $7, updated_at = $8, updated_by = $9
		WHERE id = $1 AND is_deleted = FALSE`
	_, err := r.q.Exec(context.Background(), query,
		coupon.ID, coupon.DiscountPercentage, coupon.DiscountAmount, coupon.MaxUses,
		coupon.CurrentUses, coupon.IsActive, coupon.ExpiresAt,
		coupon.UpdatedAt, coupon.UpdatedByID,
	)
	if err != nil {
		return fmt.Errorf("update coupon: %w", err)
	}
	return nil
}

// List lista cupones, más recientes primero.
func (r *CouponRepo) List(limit, offset int) ([]*entity.Coupon, error) {
	query := couponSelect + ` WHERE is_deleted = FALSE ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()
	var list []*entity.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete hace borrado lógico de un cupón.
func (r *CouponRepo) Delete(id string, deletedBy string) error {
	query := `
		UPDATE coupons SET is_deleted = TRUE, deleted_at = now(), deleted_by = $2,
			updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_deleted = FALSE`
	if _, err := r.q.Exec(context.Background(), query, id, deletedBy); err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	return nil
}

func scanCoupon(row pgx.Row) (*entity.Coupon, error) {
	var c entity.Coupon
	dest := append([]any{
		&c.ID, &c.Code, &c.DiscountPercentage, &c.DiscountAmount, &c.MaxUses,
		&c.CurrentUses, &c.IsActive, &c.ExpiresAt,
	}, auditDest(&c.Audit)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &c, nil
}
