package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/commerce-pro/internal/application/dto"
	"github.com/tu-usuario/commerce-pro/internal/application/sales"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	items  []*entity.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}
func (f *fakeOrderRepo) CreateItem(i *entity.OrderItem) error {
	cp := *i
	f.items = append(f.items, &cp)
	return nil
}
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return f.orders[id], nil }
func (f *fakeOrderRepo) GetByTrackingNumber(tracking string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.TrackingNumber == tracking {
			return o, nil
		}
	}
	return nil, nil
}
func (f *fakeOrderRepo) ListItems(orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, i := range f.items {
		if i.OrderID == orderID {
			out = append(out, i)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) List(_ string, _, _ int) ([]*entity.Order, error) { return nil, nil }
func (f *fakeOrderRepo) Update(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}
func (f *fakeOrderRepo) Delete(id string, _ string) error { delete(f.orders, id); return nil }

type fakeCouponRepo struct {
	coupons map[string]*entity.Coupon // por código
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: map[string]*entity.Coupon{}}
}

func (f *fakeCouponRepo) Create(c *entity.Coupon) error {
	cp := *c
	f.coupons[c.Code] = &cp
	return nil
}
func (f *fakeCouponRepo) GetByID(id string) (*entity.Coupon, error) {
	for _, c := range f.coupons {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCouponRepo) GetByCode(code string) (*entity.Coupon, error) {
	return f.coupons[code], nil
}
func (f *fakeCouponRepo) GetByCodeForUpdate(code string) (*entity.Coupon, error) {
	return f.coupons[code], nil
}
func (f *fakeCouponRepo) Update(c *entity.Coupon) error {
	cp := *c
	f.coupons[c.Code] = &cp
	return nil
}
func (f *fakeCouponRepo) List(_, _ int) ([]*entity.Coupon, error) { return nil, nil }
func (f *fakeCouponRepo) Delete(_ string, _ string) error         { return nil }

type fakeSalesBranchRepo struct {
	branches map[string]*entity.Branch
}

func (f *fakeSalesBranchRepo) Create(b *entity.Branch) error { f.branches[b.ID] = b; return nil }
func (f *fakeSalesBranchRepo) GetByID(id string) (*entity.Branch, error) {
	return f.branches[id], nil
}
func (f *fakeSalesBranchRepo) Update(b *entity.Branch) error           { return nil }
func (f *fakeSalesBranchRepo) List(_, _ int) ([]*entity.Branch, error) { return nil, nil }
func (f *fakeSalesBranchRepo) Delete(_ string, _ string) error         { return nil }

// fakeSalesTx ejecuta el callback directamente con los fakes, sin transacción real.
type fakeSalesTx struct {
	orderRepo  *fakeOrderRepo
	couponRepo *fakeCouponRepo
}

func (f *fakeSalesTx) Run(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	couponRepo repository.CouponRepository,
) error) error {
	return fn(f.orderRepo, f.couponRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	salesBranch = "branch-centro"
	salesUser   = "user-vendedor"
)

func newSalesFixture() (*sales.CreateOrderUseCase, *fakeSalesTx) {
	tx := &fakeSalesTx{orderRepo: newFakeOrderRepo(), couponRepo: newFakeCouponRepo()}
	branchRepo := &fakeSalesBranchRepo{branches: map[string]*entity.Branch{
		salesBranch: {ID: salesBranch, Name: "Sucursal Centro", CanShip: true},
	}}
	return sales.NewCreateOrderUseCase(tx, tx.orderRepo, branchRepo), tx
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validOrderRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		TrackingNumber: "TRK-001",
		Type:           entity.OrderTypeInStore,
		BranchID:       salesBranch,
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-a", Quantity: 2, UnitPrice: money("10.00")},
			{ProductID: "prod-b", Quantity: 1, UnitPrice: money("5.00")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateOrder
// ──────────────────────────────────────────────────────────────────────────────

// 2×10.00 + 1×5.00 → subtotal 25.00, total_items 3, total igual al subtotal.
func TestCreateOrder_CalculaTotales(t *testing.T) {
	uc, tx := newSalesFixture()

	resp, err := uc.CreateOrder(context.Background(), salesUser, validOrderRequest())
	require.NoError(t, err)

	assert.True(t, money("25.00").Equal(resp.Subtotal), "subtotal: esperado 25.00, fue %s", resp.Subtotal)
	assert.True(t, decimal.Zero.Equal(resp.DiscountAmount))
	assert.True(t, money("25.00").Equal(resp.TotalAmount))
	assert.Equal(t, int64(3), resp.TotalItems)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)

	// Cabecera y líneas persistidas
	require.Len(t, tx.orderRepo.orders, 1)
	assert.Len(t, tx.orderRepo.items, 2)
}

func TestCreateOrder_TrackingDuplicado_RetornaDuplicate(t *testing.T) {
	uc, tx := newSalesFixture()

	_, err := uc.CreateOrder(context.Background(), salesUser, validOrderRequest())
	require.NoError(t, err)

	// Mismo tracking, distinto contenido
	req := validOrderRequest()
	req.Items = []dto.OrderItemRequest{{ProductID: "prod-c", Quantity: 1, UnitPrice: money("99.00")}}
	_, err = uc.CreateOrder(context.Background(), salesUser, req)

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, tx.orderRepo.orders, 1, "no debe persistirse un segundo pedido")
	assert.Len(t, tx.orderRepo.items, 2, "no deben persistirse líneas del pedido rechazado")
}

func TestCreateOrder_SinItems_RetornaInvalidInput(t *testing.T) {
	uc, _ := newSalesFixture()
	req := validOrderRequest()
	req.Items = nil
	_, err := uc.CreateOrder(context.Background(), salesUser, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_ItemCantidadCero_RetornaInvalidInput(t *testing.T) {
	uc, _ := newSalesFixture()
	req := validOrderRequest()
	req.Items[0].Quantity = 0
	_, err := uc.CreateOrder(context.Background(), salesUser, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_ItemPrecioCero_RetornaInvalidInput(t *testing.T) {
	uc, _ := newSalesFixture()
	req := validOrderRequest()
	req.Items[1].UnitPrice = decimal.Zero
	_, err := uc.CreateOrder(context.Background(), salesUser, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_TipoInvalido_RetornaInvalidInput(t *testing.T) {
	uc, _ := newSalesFixture()
	req := validOrderRequest()
	req.Type = "WHOLESALE"
	_, err := uc.CreateOrder(context.Background(), salesUser, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_SucursalInexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newSalesFixture()
	req := validOrderRequest()
	req.BranchID = "no-existe"
	_, err := uc.CreateOrder(context.Background(), salesUser, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El precio unitario se copia a la línea: es el precio del momento de la venta.
func TestCreateOrder_CopiaPrecioUnitarioEnLinea(t *testing.T) {
	uc, tx := newSalesFixture()

	_, err := uc.CreateOrder(context.Background(), salesUser, validOrderRequest())
	require.NoError(t, err)

	require.Len(t, tx.orderRepo.items, 2)
	assert.True(t, money("10.00").Equal(tx.orderRepo.items[0].UnitPrice))
	assert.True(t, money("5.00").Equal(tx.orderRepo.items[1].UnitPrice))
}
