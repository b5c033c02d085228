package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// La columna order_id es NULLable: no todo movimiento nace de un pedido.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (id, type, quantity, notes, product_id, branch_id, order_id, ` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	orderID := (*string)(nil)
	if movement.OrderID != "" {
		orderID = &movement.OrderID
	}
	args := append([]any{
		movement.ID, movement.Type, movement.Quantity, movement.Notes,
		movement.ProductID, movement.BranchID, orderID,
	}, auditValues(&movement.Audit)...)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID (excluye borrados).
func (r *InventoryMovementRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	query := `
		SELECT id, type, quantity, notes, product_id, branch_id, order_id, ` + auditColumns + `
		FROM inventory_movements WHERE id = $1 AND is_deleted = FALSE`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos filtrando por sucursal y/o producto, más recientes primero.
func (r *InventoryMovementRepo) List(branchID, productID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, type, quantity, notes, product_id, branch_id, order_id, ` + auditColumns + `
		FROM inventory_movements WHERE is_deleted = FALSE`
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
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Delete hace borrado lógico de un movimiento. El saldo de stock no se toca.
func (r *InventoryMovementRepo) Delete(id string, deletedBy string) error {
	query := `
		UPDATE inventory_movements SET is_deleted = TRUE, deleted_at = now(), deleted_by = $2,
			updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_deleted = FALSE`
	if _, err := r.q.Exec(context.Background(), query, id, deletedBy); err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.InventoryMovement, error) {
	var m entity.InventoryMovement
	var orderID *string
	dest := append([]any{
		&m.ID, &m.Type, &m.Quantity, &m.Notes, &m.ProductID, &m.BranchID, &orderID,
	}, auditDest(&m.Audit)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if orderID != nil {
		m.OrderID = *orderID
	}
	return &m, nil
}
