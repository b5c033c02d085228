package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de inventario de forma transaccional
// (IN, OUT, ADJUSTMENT, TRANSFER): persiste el asiento en el libro y proyecta su
// efecto sobre el saldo de stock con bloqueo de fila (SELECT FOR UPDATE).
type RecordMovementUseCase struct {
	txRunner   TxRunner
	branchRepo repository.BranchRepository
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner, branchRepo repository.BranchRepository) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, branchRepo: branchRepo}
}

// RecordMovementInput entrada para registrar un movimiento.
// OrderID es opcional: referencia al pedido que originó el movimiento.
type RecordMovementInput struct {
	Type      string
	Quantity  int64
	ProductID string
	BranchID  string
	OrderID   string
	Notes     string
	UserID    string
}

// RecordMovement valida la entrada, verifica que la sucursal exista, y dentro de
// una transacción persiste el movimiento y proyecta el saldo. Devuelve el
// movimiento persistido; el saldo resultante no se devuelve (consultarlo aparte).
//
// La existencia del producto no se re-valida aquí: la garantiza la FK del esquema.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input RecordMovementInput) (*entity.InventoryMovement, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.ProductID == "" || input.BranchID == "" {
		return nil, domain.ErrInvalidInput
	}

	branch, err := uc.branchRepo.GetByID(input.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.InventoryMovement{
		ID:        uuid.New().String(),
		Type:      input.Type,
		Quantity:  input.Quantity,
		Notes:     input.Notes,
		ProductID: input.ProductID,
		BranchID:  input.BranchID,
		OrderID:   input.OrderID,
		Audit:     entity.NewAudit(now, input.UserID),
	}

	// Movimiento y proyección de stock en una sola transacción: o se confirma
	// el asiento junto con su efecto sobre el saldo, o no queda nada.
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return projectBalance(stockRepo, mov, now)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// projectBalance aplica el movimiento al saldo (sucursal, producto), bloqueando la
// fila existente con SELECT FOR UPDATE.
//
//   - IN/ADJUSTMENT suman; si no hay fila se crea con la cantidad del movimiento.
//   - OUT resta recortando en cero: una salida mayor al stock disponible deja el
//     saldo en 0 en lugar de fallar (política permisiva deliberada; puede ocultar
//     sobreventa). Sin fila previa, OUT no crea saldo.
//   - TRANSFER se acepta como tipo en el libro pero no altera el saldo.
func projectBalance(stockRepo repository.StockRepository, mov *entity.InventoryMovement, now time.Time) error {
	balance, err := stockRepo.GetForUpdate(mov.BranchID, mov.ProductID)
	if err != nil {
		return err
	}

	switch mov.Type {
	case entity.MovementTypeIN, entity.MovementTypeADJUSTMENT:
		if balance == nil {
			balance = &entity.StockBalance{BranchID: mov.BranchID, ProductID: mov.ProductID}
		}
		balance.Quantity += mov.Quantity
	case entity.MovementTypeOUT:
		if balance == nil {
			return nil
		}
		balance.Quantity -= mov.Quantity
		if balance.Quantity < 0 {
			balance.Quantity = 0
		}
	default:
		// TRANSFER: solo round-trip del tipo, sin efecto sobre el saldo.
		return nil
	}

	balance.UpdatedAt = now
	return stockRepo.Upsert(balance)
}
