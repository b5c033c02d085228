package repository

import "github.com/tu-usuario/commerce-pro/internal/domain/entity"

// ShipmentRepository define el puerto de persistencia para Shipment (logística).
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	GetByID(id string) (*entity.Shipment, error)
	GetByOrderID(orderID string) (*entity.Shipment, error)
	Update(shipment *entity.Shipment) error
	List(limit, offset int) ([]*entity.Shipment, error)
	Delete(id string, deletedBy string) error
}
