package sales_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/commerce-pro/internal/application/dto"
	"github.com/tu-usuario/commerce-pro/internal/application/sales"
	"github.com/tu-usuario/commerce-pro/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests CouponUseCase.Create — validación XOR de los campos de descuento
// ──────────────────────────────────────────────────────────────────────────────

func TestCouponCreate_Porcentaje_OK(t *testing.T) {
	uc := sales.NewCouponUseCase(newFakeCouponRepo())

	resp, err := uc.Create(salesUser, dto.CreateCouponRequest{
		Code: "DESC10", DiscountPercentage: pct("10"),
	})
	require.NoError(t, err)

	assert.Equal(t, "DESC10", resp.Code)
	assert.True(t, resp.IsActive, "un cupón nuevo arranca activo")
	assert.Equal(t, int64(0), resp.CurrentUses)
	assert.Nil(t, resp.DiscountAmount)
}

func TestCouponCreate_MontoFijo_OK(t *testing.T) {
	uc := sales.NewCouponUseCase(newFakeCouponRepo())

	resp, err := uc.Create(salesUser, dto.CreateCouponRequest{
		Code: "MENOS5", DiscountAmount: amount("5.00"), MaxUses: maxUses(100),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.DiscountPercentage)
	require.NotNil(t, resp.MaxUses)
	assert.Equal(t, int64(100), *resp.MaxUses)
}

// Ambos campos de descuento a la vez → rechazado.
func TestCouponCreate_AmbosDescuentos_RetornaInvalidInput(t *testing.T) {
	uc := sales.NewCouponUseCase(newFakeCouponRepo())
	_, err := uc.Create(salesUser, dto.CreateCouponRequest{
		Code: "AMBOS", DiscountPercentage: pct("10"), DiscountAmount: amount("5.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Ninguno de los dos → rechazado.
func TestCouponCreate_SinDescuento_RetornaInvalidInput(t *testing.T) {
	uc := sales.NewCouponUseCase(newFakeCouponRepo())
	_, err := uc.Create(salesUser, dto.CreateCouponRequest{Code: "NADA"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCouponCreate_PorcentajeFueraDeRango_RetornaInvalidInput(t *testing.T) {
	uc := sales.NewCouponUseCase(newFakeCouponRepo())

	_, err := uc.Create(salesUser, dto.CreateCouponRequest{Code: "MUCHO", DiscountPercentage: pct("101")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(salesUser, dto.CreateCouponRequest{Code: "NEGATIVO", DiscountPercentage: pct("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCouponCreate_MontoNegativo_RetornaInvalidInput(t *testing.T) {
	uc := sales.NewCouponUseCase(newFakeCouponRepo())
	_, err := uc.Create(salesUser, dto.CreateCouponRequest{Code: "NEG", DiscountAmount: amount("-5.00")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCouponCreate_MaxUsesCero_RetornaInvalidInput(t *testing.T) {
	uc := sales.NewCouponUseCase(newFakeCouponRepo())
	_, err := uc.Create(salesUser, dto.CreateCouponRequest{
		Code: "CERO", DiscountPercentage: pct("10"), MaxUses: maxUses(0),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCouponCreate_CodigoVacio_RetornaInvalidInput(t *testing.T) {
	uc := sales.NewCouponUseCase(newFakeCouponRepo())
	_, err := uc.Create(salesUser, dto.CreateCouponRequest{DiscountPercentage: pct("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCouponCreate_CodigoDuplicado_RetornaDuplicate(t *testing.T) {
	repo := newFakeCouponRepo()
	uc := sales.NewCouponUseCase(repo)

	_, err := uc.Create(salesUser, dto.CreateCouponRequest{Code: "UNICO", DiscountPercentage: pct("10")})
	require.NoError(t, err)

	_, err = uc.Create(salesUser, dto.CreateCouponRequest{Code: "UNICO", DiscountAmount: amount("2.00")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CouponUseCase.Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCouponUpdate_Desactivar(t *testing.T) {
	repo := newFakeCouponRepo()
	uc := sales.NewCouponUseCase(repo)

	created, err := uc.Create(salesUser, dto.CreateCouponRequest{Code: "TOGGLE", DiscountPercentage: pct("10")})
	require.NoError(t, err)

	off := false
	resp, err := uc.Update(created.ID, salesUser, dto.UpdateCouponRequest{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestCouponUpdate_Inexistente_RetornaNotFound(t *testing.T) {
	uc := sales.NewCouponUseCase(newFakeCouponRepo())
	off := false
	_, err := uc.Update("no-existe", salesUser, dto.UpdateCouponRequest{IsActive: &off})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
