package sales

import (
	"time"

	"github.com/tu-usuario/commerce-pro/internal/application/dto"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// OrderUseCase consultas y actualizaciones de pedidos existentes.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// GetByID obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.getWithItems(id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// GetByTrackingNumber obtiene un pedido por número de seguimiento.
func (uc *OrderUseCase) GetByTrackingNumber(trackingNumber string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByTrackingNumber(trackingNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return ToOrderResponse(order), nil
}

// List lista pedidos, opcionalmente filtrados por cliente.
func (uc *OrderUseCase) List(customerID string, limit, offset int) ([]dto.OrderResponse, error) {
	list, err := uc.repo.List(customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *ToOrderResponse(o))
	}
	return items, nil
}

// Update actualiza estado, descuento o dirección de envío de un pedido.
//
// El estado no tiene tabla de transiciones: cualquier estado puede seguir a
// cualquier otro (comportamiento permisivo intencional; la legalidad la decide
// el caller). Un cambio de DiscountAmount recalcula TotalAmount desde el
// subtotal congelado; el subtotal nunca se recalcula después de la creación.
func (uc *OrderUseCase) Update(id, userID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.getWithItems(id)
	if err != nil {
		return nil, err
	}
	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if in.DiscountAmount != nil {
		order.DiscountAmount = *in.DiscountAmount
		order.RecalculateTotal()
	}
	if in.ShippingAddress != nil {
		order.ShippingAddress = *in.ShippingAddress
	}
	order.Touch(time.Now(), userID)
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// Delete hace borrado lógico de un pedido.
func (uc *OrderUseCase) Delete(id, userID string) error {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id, userID)
}

func (uc *OrderUseCase) getWithItems(id string) (*entity.Order, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repo.ListItems(id)
	if err != nil {
		return nil, err
	}
	order.Items = order.Items[:0]
	for _, item := range items {
		order.Items = append(order.Items, *item)
	}
	return order, nil
}
