package repository

import "github.com/tu-usuario/commerce-pro/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
// La cabecera y las líneas se escriben por separado; la atomicidad la da la
// transacción que envuelve ambas escrituras (TxRunner).
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	GetByTrackingNumber(trackingNumber string) (*entity.Order, error)
	ListItems(orderID string) ([]*entity.OrderItem, error)
	// List filtra por cliente; cadena vacía = todos.
	List(customerID string, limit, offset int) ([]*entity.Order, error)
	Update(order *entity.Order) error
	Delete(id string, deletedBy string) error
}
