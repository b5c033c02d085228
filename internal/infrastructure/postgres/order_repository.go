package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
// customer_id es NULLable (venta de mostrador sin cliente registrado).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido. Tracking duplicado -> domain.ErrDuplicate.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, tracking_number, type, status, subtotal, discount_amount,
			total_amount, total_items, shipping_address, customer_id, fulfillment_branch_id, ` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	customerID := (*string)(nil)
	if order.CustomerID != "" {
		customerID = &order.CustomerID
	}
	args := append([]any{
		order.ID, order.TrackingNumber, order.Type, order.Status,
		order.Subtotal, order.DiscountAmount, order.TotalAmount, order.TotalItems,
		order.ShippingAddress, customerID, order.FulfillmentBranchID,
	}, auditValues(&order.Audit)...)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de pedido.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, ` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	args := append([]any{item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice},
		auditValues(&item.Audit)...)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido por ID (excluye borrados).
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := orderSelect + ` WHERE id = $1 AND is_deleted = FALSE`
	return r.getOne(query, id)
}

// GetByTrackingNumber obtiene un pedido por número de seguimiento (excluye borrados).
func (r *OrderRepo) GetByTrackingNumber(trackingNumber string) (*entity.Order, error) {
	query := orderSelect + ` WHERE tracking_number = $1 AND is_deleted = FALSE`
	return r.getOne(query, trackingNumber)
}

const orderSelect = `
	SELECT id, tracking_number, type, status, subtotal, discount_amount,
		total_amount, total_items, shipping_address, customer_id, fulfillment_branch_id, ` + auditColumns + `
	FROM orders`

func (r *OrderRepo) getOne(query string, arg any) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// ListItems lista las líneas de un pedido (excluye borradas).
func (r *OrderRepo) ListItems(orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price, ` + auditColumns + `
		FROM order_items WHERE order_id = $1 AND is_deleted = FALSE ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		dest := append([]any{&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice},
			auditDest(&item.Audit)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// List lista pedidos, opcionalmente por cliente, más recientes primero.
func (r *OrderRepo) List(customerID string, limit, offset int) ([]*entity.Order, error) {
	query := orderSelect + ` WHERE is_deleted = FALSE`
	args := []any{}
	pos := 1
	if customerID != "" {
		query += fmt.Sprintf(" AND customer_id = $%d", pos)
		args = append(args, customerID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera de un pedido (estado, descuento, total, dirección).
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET status = $2, discount_amount = $3, total_amount = $4,
			shipping_address = $5, updated_at = $6, updated_by = $7
		WHERE id = $1 AND is_deleted = FALSE`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.DiscountAmount, order.TotalAmount,
		order.ShippingAddress, order.UpdatedAt, order.UpdatedByID,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete hace borrado lógico de un pedido y deja sus líneas intactas (composición:
// las líneas se consultan siempre vía el pedido).
func (r *OrderRepo) Delete(id string, deletedBy string) error {
	query := `
		UPDATE orders SET is_deleted = TRUE, deleted_at = now(), deleted_by = $2,
			updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_deleted = FALSE`
	if _, err := r.q.Exec(context.Background(), query, id, deletedBy); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var customerID *string
	dest := append([]any{
		&o.ID, &o.TrackingNumber, &o.Type, &o.Status, &o.Subtotal, &o.DiscountAmount,
		&o.TotalAmount, &o.TotalItems, &o.ShippingAddress, &customerID, &o.FulfillmentBranchID,
	}, auditDest(&o.Audit)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if customerID != nil {
		o.CustomerID = *customerID
	}
	return &o, nil
}
