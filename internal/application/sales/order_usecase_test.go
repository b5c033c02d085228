package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/commerce-pro/internal/application/dto"
	"github.com/tu-usuario/commerce-pro/internal/application/sales"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
)

func newOrderFixture(t *testing.T) (*sales.OrderUseCase, *fakeOrderRepo, *entity.Order) {
	t.Helper()
	repo := newFakeOrderRepo()

	// Pedido existente con subtotal congelado de 25.00 y sin descuento
	order := &entity.Order{
		ID:                  "order-1",
		TrackingNumber:      "TRK-001",
		Type:                entity.OrderTypeInStore,
		Status:              entity.OrderStatusPending,
		Subtotal:            money("25.00"),
		DiscountAmount:      decimal.Zero,
		TotalAmount:         money("25.00"),
		TotalItems:          3,
		FulfillmentBranchID: "branch-1",
	}
	require.NoError(t, repo.Create(order))

	return sales.NewOrderUseCase(repo), repo, order
}

func status(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Tests OrderUseCase.Update
// ──────────────────────────────────────────────────────────────────────────────

// Cambiar el descuento recalcula total_amount desde el subtotal congelado.
func TestOrderUpdate_CambioDeDescuento_RecalculaTotal(t *testing.T) {
	uc, repo, order := newOrderFixture(t)

	resp, err := uc.Update(order.ID, salesUser, dto.UpdateOrderRequest{DiscountAmount: amount("4.00")})
	require.NoError(t, err)

	assert.True(t, money("25.00").Equal(resp.Subtotal), "el subtotal no debe recalcularse")
	assert.True(t, money("4.00").Equal(resp.DiscountAmount))
	assert.True(t, money("21.00").Equal(resp.TotalAmount))

	persisted := repo.orders[order.ID]
	assert.True(t, money("21.00").Equal(persisted.TotalAmount))
}

// Bajar el descuento a cero restaura el total al subtotal.
func TestOrderUpdate_DescuentoCero_RestauraTotal(t *testing.T) {
	uc, _, order := newOrderFixture(t)

	_, err := uc.Update(order.ID, salesUser, dto.UpdateOrderRequest{DiscountAmount: amount("4.00")})
	require.NoError(t, err)

	resp, err := uc.Update(order.ID, salesUser, dto.UpdateOrderRequest{DiscountAmount: amount("0")})
	require.NoError(t, err)
	assert.True(t, money("25.00").Equal(resp.TotalAmount))
}

// Una actualización sin descuento deja los montos intactos.
func TestOrderUpdate_SinDescuento_NoAlteraMontos(t *testing.T) {
	uc, _, order := newOrderFixture(t)

	resp, err := uc.Update(order.ID, salesUser, dto.UpdateOrderRequest{Status: status(entity.OrderStatusConfirmed)})
	require.NoError(t, err)

	assert.True(t, money("25.00").Equal(resp.Subtotal))
	assert.True(t, decimal.Zero.Equal(resp.DiscountAmount))
	assert.True(t, money("25.00").Equal(resp.TotalAmount))
}

// No hay tabla de transiciones: cualquier estado puede seguir a cualquier otro.
func TestOrderUpdate_TransicionDeEstadoLibre(t *testing.T) {
	uc, _, order := newOrderFixture(t)

	for _, s := range []string{
		entity.OrderStatusDelivered,
		entity.OrderStatusPending,
		entity.OrderStatusCancelled,
		entity.OrderStatusConfirmed,
	} {
		resp, err := uc.Update(order.ID, salesUser, dto.UpdateOrderRequest{Status: status(s)})
		require.NoError(t, err, "transición a %s", s)
		assert.Equal(t, s, resp.Status)
	}
}

func TestOrderUpdate_EstadoDesconocido_RetornaInvalidInput(t *testing.T) {
	uc, repo, order := newOrderFixture(t)

	_, err := uc.Update(order.ID, salesUser, dto.UpdateOrderRequest{Status: status("EN_CAMINO")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.OrderStatusPending, repo.orders[order.ID].Status)
}

func TestOrderUpdate_PedidoInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newOrderFixture(t)

	_, err := uc.Update("order-nada", salesUser, dto.UpdateOrderRequest{DiscountAmount: amount("1.00")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderDelete_PedidoInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newOrderFixture(t)

	err := uc.Delete("order-nada", salesUser)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
