package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/commerce-pro/internal/application/dto"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// CouponUseCase casos de uso CRUD para cupones de descuento.
type CouponUseCase struct {
	repo repository.CouponRepository
}

// NewCouponUseCase construye el caso de uso.
func NewCouponUseCase(repo repository.CouponRepository) *CouponUseCase {
	return &CouponUseCase{repo: repo}
}

// Create crea un cupón. Exige código único y exactamente uno de los dos campos
// de descuento: porcentaje (0..100) o monto fijo (>= 0), nunca ambos ni ninguno.
func (uc *CouponUseCase) Create(userID string, in dto.CreateCouponRequest) (*dto.CouponResponse, error) {
	if in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountPercentage != nil && in.DiscountAmount != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountPercentage == nil && in.DiscountAmount == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountPercentage != nil {
		pct := *in.DiscountPercentage
		if pct.LessThan(decimal.Zero) || pct.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.DiscountAmount != nil && in.DiscountAmount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.MaxUses != nil && *in.MaxUses <= 0 {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	coupon := &entity.Coupon{
		ID:                 uuid.New().String(),
		Code:               in.Code,
		DiscountPercentage: in.DiscountPercentage,
		DiscountAmount:     in.DiscountAmount,
		MaxUses:            in.MaxUses,
		IsActive:           true,
		ExpiresAt:          in.ExpiresAt,
		Audit:              entity.NewAudit(time.Now(), userID),
	}
	if err := uc.repo.Create(coupon); err != nil {
		return nil, err
	}
	return toCouponResponse(coupon), nil
}

// GetByID obtiene un cupón por ID.
func (uc *CouponUseCase) GetByID(id string) (*dto.CouponResponse, error) {
	coupon, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, domain.ErrNotFound
	}
	return toCouponResponse(coupon), nil
}

// Update actualiza código, actividad, límite de usos o marcador de expiración.
// Los campos de descuento no se modifican después de crear el cupón.
func (uc *CouponUseCase) Update(id, userID string, in dto.UpdateCouponRequest) (*dto.CouponResponse, error) {
	coupon, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil && *in.Code != coupon.Code {
		existing, err := uc.repo.GetByCode(*in.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		coupon.Code = *in.Code
	}
	if in.IsActive != nil {
		coupon.IsActive = *in.IsActive
	}
	if in.MaxUses != nil {
		if *in.MaxUses <= 0 {
			return nil, domain.ErrInvalidInput
		}
		coupon.MaxUses = in.MaxUses
	}
	if in.ExpiresAt != nil {
		coupon.ExpiresAt = *in.ExpiresAt
	}
	coupon.Touch(time.Now(), userID)
	if err := uc.repo.Update(coupon); err != nil {
		return nil, err
	}
	return toCouponResponse(coupon), nil
}

// List lista cupones con paginación.
func (uc *CouponUseCase) List(limit, offset int) ([]dto.CouponResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CouponResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCouponResponse(c))
	}
	return items, nil
}

// Delete hace borrado lógico de un cupón.
func (uc *CouponUseCase) Delete(id, userID string) error {
	coupon, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if coupon == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id, userID)
}

func toCouponResponse(c *entity.Coupon) *dto.CouponResponse {
	return &dto.CouponResponse{
		ID:                 c.ID,
		Code:               c.Code,
		DiscountPercentage: c.DiscountPercentage,
		DiscountAmount:     c.DiscountAmount,
		MaxUses:            c.MaxUses,
		CurrentUses:        c.CurrentUses,
		IsActive:           c.IsActive,
		ExpiresAt:          c.ExpiresAt,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
