package repository

import "github.com/tu-usuario/commerce-pro/internal/domain/entity"

// CouponRepository define el puerto de persistencia para Coupon.
type CouponRepository interface {
	Create(coupon *entity.Coupon) error
	GetByID(id string) (*entity.Coupon, error)
	GetByCode(code string) (*entity.Coupon, error)
	// GetByCodeForUpdate bloquea la fila del cupón (SELECT FOR UPDATE) para que
	// la secuencia verificar-límite/incrementar-usos sea segura bajo concurrencia.
	GetByCodeForUpdate(code string) (*entity.Coupon, error)
	Update(coupon *entity.Coupon) error
	List(limit, offset int) ([]*entity.Coupon, error)
	Delete(id string, deletedBy string) error
}
