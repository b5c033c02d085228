package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/commerce-pro/internal/application/inventory"
	"github.com/tu-usuario/commerce-pro/internal/application/sales"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and SalesTxRunner implements sales.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*SalesTxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con los
// repositorios de inventario atados a esa tx (movimiento + proyección de stock
// como una sola unidad).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewInventoryMovementRepository(tx)
	stockRepo := NewStockRepository(tx)

	if err := fn(movRepo, stockRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// SalesTxRunner ejecuta callbacks dentro de una transacción PostgreSQL con los
// repositorios de ventas atados a esa tx (cabecera+líneas de pedido, pedido+cupón).
type SalesTxRunner struct {
	pool *pgxpool.Pool
}

// NewSalesTxRunner construye el runner con el pool.
func NewSalesTxRunner(pool *pgxpool.Pool) *SalesTxRunner {
	return &SalesTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *SalesTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	couponRepo repository.CouponRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	couponRepo := NewCouponRepository(tx)

	if err := fn(orderRepo, couponRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
