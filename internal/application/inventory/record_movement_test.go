package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/commerce-pro/internal/application/inventory"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeBranchRepo struct {
	branches map[string]*entity.Branch
}

func (f *fakeBranchRepo) Create(b *entity.Branch) error { f.branches[b.ID] = b; return nil }
func (f *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	return f.branches[id], nil
}
func (f *fakeBranchRepo) Update(b *entity.Branch) error           { f.branches[b.ID] = b; return nil }
func (f *fakeBranchRepo) List(_, _ int) ([]*entity.Branch, error) { return nil, nil }
func (f *fakeBranchRepo) Delete(id string, _ string) error        { delete(f.branches, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.InventoryMovement
}

func (f *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *fakeMovementRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (f *fakeMovementRepo) List(_, _ string, _, _ int) ([]*entity.InventoryMovement, error) {
	return f.movements, nil
}
func (f *fakeMovementRepo) Delete(_ string, _ string) error { return nil }

type stockKey struct{ branchID, productID string }

type fakeStockRepo struct {
	balances map[stockKey]*entity.StockBalance
}

func (f *fakeStockRepo) Get(branchID, productID string) (*entity.StockBalance, error) {
	return f.balances[stockKey{branchID, productID}], nil
}
func (f *fakeStockRepo) GetForUpdate(branchID, productID string) (*entity.StockBalance, error) {
	return f.Get(branchID, productID)
}
func (f *fakeStockRepo) Upsert(b *entity.StockBalance) error {
	f.balances[stockKey{b.BranchID, b.ProductID}] = b
	return nil
}
func (f *fakeStockRepo) List(_, _ string, _, _ int) ([]*entity.StockBalance, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback directamente con los fakes, sin transacción real.
type fakeTxRunner struct {
	movRepo   *fakeMovementRepo
	stockRepo *fakeStockRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	return fn(f.movRepo, f.stockRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	branchA  = "branch-a"
	productX = "product-x"
	userTest = "user-test"
)

func newFixture() (*inventory.RecordMovementUseCase, *fakeTxRunner, *fakeBranchRepo) {
	branchRepo := &fakeBranchRepo{branches: map[string]*entity.Branch{
		branchA: {ID: branchA, Name: "Sucursal Centro"},
	}}
	tx := &fakeTxRunner{
		movRepo:   &fakeMovementRepo{},
		stockRepo: &fakeStockRepo{balances: map[stockKey]*entity.StockBalance{}},
	}
	return inventory.NewRecordMovementUseCase(tx, branchRepo), tx, branchRepo
}

func record(t *testing.T, uc *inventory.RecordMovementUseCase, movType string, qty int64) *entity.InventoryMovement {
	t.Helper()
	mov, err := uc.RecordMovement(context.Background(), inventory.RecordMovementInput{
		Type:      movType,
		Quantity:  qty,
		ProductID: productX,
		BranchID:  branchA,
		UserID:    userTest,
	})
	require.NoError(t, err)
	return mov
}

func balanceOf(tx *fakeTxRunner) int64 {
	b := tx.stockRepo.balances[stockKey{branchA, productX}]
	if b == nil {
		return -1 // sin fila
	}
	return b.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_CantidadCero_RetornaInvalidQuantity(t *testing.T) {
	uc, tx, _ := newFixture()
	_, err := uc.RecordMovement(context.Background(), inventory.RecordMovementInput{
		Type: entity.MovementTypeIN, Quantity: 0, ProductID: productX, BranchID: branchA, UserID: userTest,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Empty(t, tx.movRepo.movements, "no debe persistirse ningún movimiento")
}

func TestRecordMovement_CantidadNegativa_RetornaInvalidQuantity(t *testing.T) {
	uc, _, _ := newFixture()
	_, err := uc.RecordMovement(context.Background(), inventory.RecordMovementInput{
		Type: entity.MovementTypeOUT, Quantity: -5, ProductID: productX, BranchID: branchA, UserID: userTest,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestRecordMovement_TipoDesconocido_RetornaInvalidInput(t *testing.T) {
	uc, _, _ := newFixture()
	_, err := uc.RecordMovement(context.Background(), inventory.RecordMovementInput{
		Type: "RETURN", Quantity: 1, ProductID: productX, BranchID: branchA, UserID: userTest,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordMovement_SucursalInexistente_RetornaNotFound(t *testing.T) {
	uc, tx, _ := newFixture()
	_, err := uc.RecordMovement(context.Background(), inventory.RecordMovementInput{
		Type: entity.MovementTypeIN, Quantity: 10, ProductID: productX, BranchID: "no-existe", UserID: userTest,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, tx.movRepo.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Proyección de saldo
// ──────────────────────────────────────────────────────────────────────────────

// Un IN sobre un par (sucursal, producto) sin fila previa crea el saldo.
func TestRecordMovement_IN_CreaSaldoSiNoExiste(t *testing.T) {
	uc, tx, _ := newFixture()

	mov := record(t, uc, entity.MovementTypeIN, 10)

	assert.NotEmpty(t, mov.ID)
	assert.Equal(t, int64(10), balanceOf(tx))
	require.Len(t, tx.movRepo.movements, 1, "el asiento debe quedar en el libro")
}

func TestRecordMovement_IN_SumaSobreSaldoExistente(t *testing.T) {
	uc, tx, _ := newFixture()

	record(t, uc, entity.MovementTypeIN, 10)
	record(t, uc, entity.MovementTypeIN, 7)

	assert.Equal(t, int64(17), balanceOf(tx))
}

// ADJUSTMENT se comporta igual que IN: suma (siempre positiva).
func TestRecordMovement_ADJUSTMENT_SumaComoIN(t *testing.T) {
	uc, tx, _ := newFixture()

	record(t, uc, entity.MovementTypeADJUSTMENT, 4)
	record(t, uc, entity.MovementTypeADJUSTMENT, 3)

	assert.Equal(t, int64(7), balanceOf(tx))
}

func TestRecordMovement_OUT_RestaDelSaldo(t *testing.T) {
	uc, tx, _ := newFixture()

	record(t, uc, entity.MovementTypeIN, 10)
	record(t, uc, entity.MovementTypeOUT, 4)

	assert.Equal(t, int64(6), balanceOf(tx))
}

// Una salida mayor al stock disponible deja el saldo en 0, nunca negativo.
func TestRecordMovement_OUT_RecortaEnCero(t *testing.T) {
	uc, tx, _ := newFixture()

	record(t, uc, entity.MovementTypeIN, 3)
	mov := record(t, uc, entity.MovementTypeOUT, 10)

	assert.Equal(t, int64(0), balanceOf(tx))
	assert.Len(t, tx.movRepo.movements, 2, "el asiento OUT se registra aunque recorte")
	assert.Equal(t, int64(10), mov.Quantity, "el libro conserva la cantidad pedida, no la recortada")
}

// OUT sin fila previa no crea saldo: el movimiento queda en el libro pero no hay proyección.
func TestRecordMovement_OUT_SinSaldoPrevio_NoCreaFila(t *testing.T) {
	uc, tx, _ := newFixture()

	record(t, uc, entity.MovementTypeOUT, 5)

	assert.Equal(t, int64(-1), balanceOf(tx), "no debe existir fila de saldo")
	assert.Len(t, tx.movRepo.movements, 1)
}

// TRANSFER se acepta y queda en el libro, pero no altera ningún saldo.
func TestRecordMovement_TRANSFER_NoAlteraSaldo(t *testing.T) {
	uc, tx, _ := newFixture()

	record(t, uc, entity.MovementTypeIN, 8)
	record(t, uc, entity.MovementTypeTRANSFER, 5)

	assert.Equal(t, int64(8), balanceOf(tx))
	assert.Len(t, tx.movRepo.movements, 2)
}

// Secuencia mixta: el saldo refleja la proyección acumulada.
func TestRecordMovement_SecuenciaMixta(t *testing.T) {
	uc, tx, _ := newFixture()

	record(t, uc, entity.MovementTypeIN, 10)         // 10
	record(t, uc, entity.MovementTypeOUT, 4)         // 6
	record(t, uc, entity.MovementTypeADJUSTMENT, 2)  // 8
	record(t, uc, entity.MovementTypeTRANSFER, 100)  // 8 (sin efecto)
	record(t, uc, entity.MovementTypeOUT, 20)        // 0 (recorte)
	record(t, uc, entity.MovementTypeIN, 5)          // 5

	assert.Equal(t, int64(5), balanceOf(tx))
	assert.Len(t, tx.movRepo.movements, 6)
}
