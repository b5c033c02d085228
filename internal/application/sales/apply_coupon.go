package sales

import (
	"context"
	"time"

	"github.com/tu-usuario/commerce-pro/internal/application/dto"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// ApplyCouponUseCase aplica un cupón de descuento a un pedido: valida estado y
// límite de usos, sobrescribe el descuento del pedido e incrementa el contador
// de usos del cupón, todo en una transacción con la fila del cupón bloqueada.
type ApplyCouponUseCase struct {
	txRunner TxRunner
}

// NewApplyCouponUseCase construye el caso de uso.
func NewApplyCouponUseCase(txRunner TxRunner) *ApplyCouponUseCase {
	return &ApplyCouponUseCase{txRunner: txRunner}
}

// ApplyCoupon aplica el cupón identificado por code al pedido orderID.
//
// Reglas:
//   - pedido o cupón inexistente → ErrNotFound.
//   - cupón inactivo → ErrCouponInactive; límite alcanzado → ErrCouponLimitReached.
//     En ambos casos pedido y cupón quedan intactos.
//   - descuento = subtotal × porcentaje/100 si hay porcentaje; si no, el monto
//     fijo del cupón. El descuento sobrescribe cualquier cupón anterior: los
//     cupones no se acumulan.
//   - El cupón expirado NO se rechaza: ExpiresAt se almacena pero no se evalúa.
//
// La fila del cupón se bloquea (SELECT FOR UPDATE) para que verificar el límite
// e incrementar current_uses sea atómico bajo concurrencia: current_uses nunca
// supera max_uses.
func (uc *ApplyCouponUseCase) ApplyCoupon(ctx context.Context, orderID, code, userID string) (*dto.OrderResponse, error) {
	if orderID == "" || code == "" {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.Order
	err := uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository, couponRepo repository.CouponRepository) error {
		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		coupon, err := couponRepo.GetByCodeForUpdate(code)
		if err != nil {
			return err
		}
		if coupon == nil {
			return domain.ErrNotFound
		}
		if !coupon.IsActive {
			return domain.ErrCouponInactive
		}
		if coupon.UsageExhausted() {
			return domain.ErrCouponLimitReached
		}

		now := time.Now()
		order.DiscountAmount = coupon.Discount(order.Subtotal)
		order.RecalculateTotal()
		order.Touch(now, userID)

		coupon.CurrentUses++
		coupon.Touch(now, userID)

		if err := orderRepo.Update(order); err != nil {
			return err
		}
		if err := couponRepo.Update(coupon); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(updated), nil
}
