package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// La tabla stock_balances tiene clave primaria compuesta (branch_id, product_id)
// y un CHECK quantity >= 0 como última línea de defensa del invariante.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el saldo de un producto en una sucursal; nil si no hay fila.
func (r *StockRepo) Get(branchID, productID string) (*entity.StockBalance, error) {
	query := `
		SELECT branch_id, product_id, quantity, updated_at
		FROM stock_balances WHERE branch_id = $1 AND product_id = $2`
	var s entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, branchID, productID).Scan(
		&s.BranchID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock balance: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el saldo y bloquea la fila para update (SELECT FOR UPDATE);
// nil si no hay fila (no hay nada que bloquear: el Upsert posterior la crea).
func (r *StockRepo) GetForUpdate(branchID, productID string) (*entity.StockBalance, error) {
	query := `
		SELECT branch_id, product_id, quantity, updated_at
		FROM stock_balances WHERE branch_id = $1 AND product_id = $2
		FOR UPDATE`
	var s entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, branchID, productID).Scan(
		&s.BranchID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock balance for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza el saldo (por sucursal y producto).
func (r *StockRepo) Upsert(balance *entity.StockBalance) error {
	query := `
		INSERT INTO stock_balances (branch_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (branch_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, balance.BranchID, balance.ProductID, balance.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock balance: %w", err)
	}
	return nil
}

// List lista saldos filtrando por sucursal y/o producto (cadena vacía = sin filtro).
func (r *StockRepo) List(branchID, productID string, limit, offset int) ([]*entity.StockBalance, error) {
	query := `
		SELECT branch_id, product_id, quantity, updated_at
		FROM stock_balances WHERE 1=1`
	args := []any{}
	pos := 1
	if branchID != "" {
		query += fmt.Sprintf(" AND branch_id = $%d", pos)
		args = append(args, branchID)
		pos++
	}
	if productID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, productID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY branch_id, product_id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock balances: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockBalance
	for rows.Next() {
		var s entity.StockBalance
		if err := rows.Scan(&s.BranchID, &s.ProductID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock balance: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
