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

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación del puerto ShipmentRepository sobre PostgreSQL.
// order_id tiene índice único: un envío por pedido.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador de envíos.
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

const shipmentSelect = `
	SELECT id, tracking_number, carrier, status, shipping_cost, shipping_address,
		estimated_delivery_date, shipped_date, delivered_date, notes,
		order_id, origin_branch_id, ` + auditColumns + `
	FROM shipments`

// Create persiste un envío. Pedido con envío existente o tracking duplicado -> domain.ErrDuplicate.
func (r *ShipmentRepo) Create(shipment *entity.Shipment) error {
	query := `
		INSERT INTO shipments (id, tracking_number, carrier, status, shipping_cost,
			shipping_address, estimated_delivery_date, shipped_date, delivered_date,
			notes, order_id, origin_branch_id, ` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	args := append([]any{
		shipment.ID, shipment.TrackingNumber, shipment.Carrier, shipment.Status,
		shipment.ShippingCost, shipment.ShippingAddress, shipment.EstimatedDeliveryDate,
		shipment.ShippedDate, shipment.DeliveredDate, shipment.Notes,
		shipment.OrderID, shipment.OriginBranchID,
	}, auditValues(&shipment.Audit)...)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByID obtiene un envío por ID (excluye borrados).
func (r *ShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	return r.getOne(shipmentSelect+` WHERE id = $1 AND is_deleted = FALSE`, id)
}

// GetByOrderID obtiene el envío asociado a un pedido (excluye borrados).
func (r *ShipmentRepo) GetByOrderID(orderID string) (*entity.Shipment, error) {
	return r.getOne(shipmentSelect+` WHERE order_id = $1 AND is_deleted = FALSE`, orderID)
}

func (r *ShipmentRepo) getOne(query string, arg any) (*entity.Shipment, error) {
	s, err := scanShipment(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return s, nil
}

// Update actualiza un envío (estado, fechas, transportadora, notas).
func (r *ShipmentRepo) Update(shipment *entity.Shipment) error {
	query := `
		UPDATE shipments SET carrier = $2, status = $3, shipping_cost = $4,
			shipping_address = $5, estimated_delivery_date = $6, shipped_date = $7,
			delivered_date = $8, notes = $9, updated_at = $10, updated_by = $11
		WHERE id = $1 AND is_deleted = FALSE`
	_, err := r.q.Exec(context.Background(), query,
		shipment.ID, shipment.Carrier, shipment.Status, shipment.ShippingCost,
		shipment.ShippingAddress, shipment.EstimatedDeliveryDate, shipment.ShippedDate,
		shipment.DeliveredDate, shipment.Notes, shipment.UpdatedAt, shipment.UpdatedByID,
	)
	if err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}
	return nil
}

// List lista envíos, más recientes primero.
func (r *ShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	query := shipmentSelect + ` WHERE is_deleted = FALSE ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete hace borrado lógico de un envío.
func (r *ShipmentRepo) Delete(id string, deletedBy string) error {
	query := `
		UPDATE shipments SET is_deleted = TRUE, deleted_at = now(), deleted_by = $2,
			updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_deleted = FALSE`
	if _, err := r.q.Exec(context.Background(), query, id, deletedBy); err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	return nil
}

func scanShipment(row pgx.Row) (*entity.Shipment, error) {
	var s entity.Shipment
	dest := append([]any{
		&s.ID, &s.TrackingNumber, &s.Carrier, &s.Status, &s.ShippingCost,
		&s.ShippingAddress, &s.EstimatedDeliveryDate, &s.ShippedDate,
		&s.DeliveredDate, &s.Notes, &s.OrderID, &s.OriginBranchID,
	}, auditDest(&s.Audit)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &s, nil
}
