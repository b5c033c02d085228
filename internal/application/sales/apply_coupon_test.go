package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/commerce-pro/internal/application/sales"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func newCouponFixture(t *testing.T) (*sales.ApplyCouponUseCase, *fakeSalesTx, *entity.Order) {
	t.Helper()
	tx := &fakeSalesTx{orderRepo: newFakeOrderRepo(), couponRepo: newFakeCouponRepo()}

	// Pedido existente con subtotal congelado de 25.00
	order := &entity.Order{
		ID:             "order-1",
		TrackingNumber: "TRK-001",
		Type:           entity.OrderTypeOnline,
		Status:         entity.OrderStatusPending,
		Subtotal:       money("25.00"),
		DiscountAmount: decimal.Zero,
		TotalAmount:    money("25.00"),
		TotalItems:     3,
	}
	require.NoError(t, tx.orderRepo.Create(order))

	return sales.NewApplyCouponUseCase(tx), tx, order
}

func pct(s string) *decimal.Decimal    { d := decimal.RequireFromString(s); return &d }
func amount(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }
func maxUses(n int64) *int64           { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Tests ApplyCoupon
// ──────────────────────────────────────────────────────────────────────────────

// Cupón del 10% sobre subtotal 25.00 → descuento 2.50, total 22.50, usos +1.
func TestApplyCoupon_Porcentaje_CalculaDescuento(t *testing.T) {
	uc, tx, order := newCouponFixture(t)
	require.NoError(t, tx.couponRepo.Create(&entity.Coupon{
		ID: "c-1", Code: "DESC10", DiscountPercentage: pct("10"), IsActive: true,
	}))

	resp, err := uc.ApplyCoupon(context.Background(), order.ID, "DESC10", salesUser)
	require.NoError(t, err)

	assert.True(t, money("2.50").Equal(resp.DiscountAmount), "descuento: esperado 2.50, fue %s", resp.DiscountAmount)
	assert.True(t, money("22.50").Equal(resp.TotalAmount))
	assert.True(t, money("25.00").Equal(resp.Subtotal), "el subtotal no cambia")

	coupon, _ := tx.couponRepo.GetByCode("DESC10")
	assert.Equal(t, int64(1), coupon.CurrentUses)
}

// Cupón de monto fijo: el descuento es el monto, sin importar el subtotal.
func TestApplyCoupon_MontoFijo(t *testing.T) {
	uc, tx, order := newCouponFixture(t)
	require.NoError(t, tx.couponRepo.Create(&entity.Coupon{
		ID: "c-2", Code: "MENOS5", DiscountAmount: amount("5.00"), IsActive: true,
	}))

	resp, err := uc.ApplyCoupon(context.Background(), order.ID, "MENOS5", salesUser)
	require.NoError(t, err)

	assert.True(t, money("5.00").Equal(resp.DiscountAmount))
	assert.True(t, money("20.00").Equal(resp.TotalAmount))
}

// Un segundo cupón sobrescribe el descuento del primero: no se acumulan.
func TestApplyCoupon_SegundoCuponSobrescribe(t *testing.T) {
	uc, tx, order := newCouponFixture(t)
	require.NoError(t, tx.couponRepo.Create(&entity.Coupon{
		ID: "c-1", Code: "DESC10", DiscountPercentage: pct("10"), IsActive: true,
	}))
	require.NoError(t, tx.couponRepo.Create(&entity.Coupon{
		ID: "c-3", Code: "DESC20", DiscountPercentage: pct("20"), IsActive: true,
	}))

	_, err := uc.ApplyCoupon(context.Background(), order.ID, "DESC10", salesUser)
	require.NoError(t, err)
	resp, err := uc.ApplyCoupon(context.Background(), order.ID, "DESC20", salesUser)
	require.NoError(t, err)

	// 20% de 25.00 = 5.00, no 2.50 + 5.00
	assert.True(t, money("5.00").Equal(resp.DiscountAmount), "el descuento se reemplaza, no se suma")
	assert.True(t, money("20.00").Equal(resp.TotalAmount))
}

func TestApplyCoupon_PedidoInexistente_RetornaNotFound(t *testing.T) {
	uc, tx, _ := newCouponFixture(t)
	require.NoError(t, tx.couponRepo.Create(&entity.Coupon{
		ID: "c-1", Code: "DESC10", DiscountPercentage: pct("10"), IsActive: true,
	}))

	_, err := uc.ApplyCoupon(context.Background(), "no-existe", "DESC10", salesUser)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyCoupon_CuponInexistente_RetornaNotFound(t *testing.T) {
	uc, _, order := newCouponFixture(t)
	_, err := uc.ApplyCoupon(context.Background(), order.ID, "NADA", salesUser)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyCoupon_CuponInactivo_RetornaCouponInactive(t *testing.T) {
	uc, tx, order := newCouponFixture(t)
	require.NoError(t, tx.couponRepo.Create(&entity.Coupon{
		ID: "c-4", Code: "APAGADO", DiscountPercentage: pct("10"), IsActive: false,
	}))

	_, err := uc.ApplyCoupon(context.Background(), order.ID, "APAGADO", salesUser)
	assert.ErrorIs(t, err, domain.ErrCouponInactive)

	// Pedido y cupón intactos
	got, _ := tx.orderRepo.GetByID(order.ID)
	assert.True(t, decimal.Zero.Equal(got.DiscountAmount))
	coupon, _ := tx.couponRepo.GetByCode("APAGADO")
	assert.Equal(t, int64(0), coupon.CurrentUses)
}

// Cupón con límite agotado: rechazado sin tocar pedido ni contador.
func TestApplyCoupon_LimiteAlcanzado_RetornaLimitReached(t *testing.T) {
	uc, tx, order := newCouponFixture(t)
	require.NoError(t, tx.couponRepo.Create(&entity.Coupon{
		ID: "c-5", Code: "AGOTADO", DiscountPercentage: pct("10"),
		MaxUses: maxUses(3), CurrentUses: 3, IsActive: true,
	}))

	_, err := uc.ApplyCoupon(context.Background(), order.ID, "AGOTADO", salesUser)
	assert.ErrorIs(t, err, domain.ErrCouponLimitReached)

	got, _ := tx.orderRepo.GetByID(order.ID)
	assert.True(t, decimal.Zero.Equal(got.DiscountAmount), "el pedido no debe cambiar")
	coupon, _ := tx.couponRepo.GetByCode("AGOTADO")
	assert.Equal(t, int64(3), coupon.CurrentUses, "el contador no debe incrementarse")
}

// El último uso disponible sí pasa; el siguiente ya no.
func TestApplyCoupon_UltimoUsoDisponible(t *testing.T) {
	uc, tx, order := newCouponFixture(t)
	require.NoError(t, tx.couponRepo.Create(&entity.Coupon{
		ID: "c-6", Code: "CASI", DiscountPercentage: pct("10"),
		MaxUses: maxUses(3), CurrentUses: 2, IsActive: true,
	}))

	_, err := uc.ApplyCoupon(context.Background(), order.ID, "CASI", salesUser)
	require.NoError(t, err)

	coupon, _ := tx.couponRepo.GetByCode("CASI")
	assert.Equal(t, int64(3), coupon.CurrentUses)

	_, err = uc.ApplyCoupon(context.Background(), order.ID, "CASI", salesUser)
	assert.ErrorIs(t, err, domain.ErrCouponLimitReached)
}

// Cupón sin MaxUses: usos ilimitados.
func TestApplyCoupon_SinLimite_NuncaSeAgota(t *testing.T) {
	uc, tx, order := newCouponFixture(t)
	require.NoError(t, tx.couponRepo.Create(&entity.Coupon{
		ID: "c-7", Code: "LIBRE", DiscountPercentage: pct("5"),
		CurrentUses: 9999, IsActive: true,
	}))

	_, err := uc.ApplyCoupon(context.Background(), order.ID, "LIBRE", salesUser)
	require.NoError(t, err)

	coupon, _ := tx.couponRepo.GetByCode("LIBRE")
	assert.Equal(t, int64(10000), coupon.CurrentUses)
}

// ExpiresAt se almacena pero no se evalúa: un cupón "vencido" sigue aplicando.
func TestApplyCoupon_ExpiradoNoSeRechaza(t *testing.T) {
	uc, tx, order := newCouponFixture(t)
	require.NoError(t, tx.couponRepo.Create(&entity.Coupon{
		ID: "c-8", Code: "VIEJO", DiscountPercentage: pct("10"),
		ExpiresAt: "2020-01-01", IsActive: true,
	}))

	resp, err := uc.ApplyCoupon(context.Background(), order.ID, "VIEJO", salesUser)
	require.NoError(t, err)
	assert.True(t, money("2.50").Equal(resp.DiscountAmount))
}
