package inventory

import (
	"github.com/tu-usuario/commerce-pro/internal/application/dto"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre saldos y libro de movimientos.
type QueryUseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.InventoryMovementRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(stockRepo repository.StockRepository, movRepo repository.InventoryMovementRepository) *QueryUseCase {
	return &QueryUseCase{stockRepo: stockRepo, movRepo: movRepo}
}

// GetBalance devuelve el saldo de un producto en una sucursal.
// Sin fila registrada el saldo es cero, no un error.
func (uc *QueryUseCase) GetBalance(branchID, productID string) (*dto.StockBalanceResponse, error) {
	balance, err := uc.stockRepo.Get(branchID, productID)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		balance = &entity.StockBalance{BranchID: branchID, ProductID: productID}
	}
	return toStockBalanceResponse(balance), nil
}

// ListBalances lista saldos filtrando por sucursal y/o producto (vacío = sin filtro).
func (uc *QueryUseCase) ListBalances(branchID, productID string, limit, offset int) ([]dto.StockBalanceResponse, error) {
	list, err := uc.stockRepo.List(branchID, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockBalanceResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toStockBalanceResponse(b))
	}
	return items, nil
}

// GetMovement obtiene un movimiento del libro por ID.
func (uc *QueryUseCase) GetMovement(id string) (*dto.MovementResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return ToMovementResponse(mov), nil
}

// ListMovements lista movimientos filtrando por sucursal y/o producto.
func (uc *QueryUseCase) ListMovements(branchID, productID string, limit, offset int) ([]dto.MovementResponse, error) {
	list, err := uc.movRepo.List(branchID, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *ToMovementResponse(m))
	}
	return items, nil
}

// DeleteMovement hace borrado lógico de un movimiento. El efecto del movimiento
// sobre el stock NO se revierte: revertir requiere un movimiento compensatorio.
func (uc *QueryUseCase) DeleteMovement(id, userID string) error {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNotFound
	}
	return uc.movRepo.Delete(id, userID)
}

func toStockBalanceResponse(b *entity.StockBalance) *dto.StockBalanceResponse {
	return &dto.StockBalanceResponse{
		BranchID:  b.BranchID,
		ProductID: b.ProductID,
		Quantity:  b.Quantity,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToMovementResponse mapea la entidad a su DTO de respuesta.
func ToMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		ProductID: m.ProductID,
		BranchID:  m.BranchID,
		OrderID:   m.OrderID,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}
