package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/commerce-pro/internal/application/dto"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// CreateOrderUseCase arma pedidos: calcula subtotal, total de unidades y total,
// y persiste cabecera + líneas como una sola unidad transaccional.
type CreateOrderUseCase struct {
	txRunner   TxRunner
	orderRepo  repository.OrderRepository
	branchRepo repository.BranchRepository
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(txRunner TxRunner, orderRepo repository.OrderRepository, branchRepo repository.BranchRepository) *CreateOrderUseCase {
	return &CreateOrderUseCase{txRunner: txRunner, orderRepo: orderRepo, branchRepo: branchRepo}
}

// CreateOrder valida la solicitud, calcula los totales y persiste el pedido.
//
// Reglas:
//   - tracking_number duplicado → ErrDuplicate, sin escrituras.
//   - items vacío, cantidad <= 0 o precio unitario <= 0 → ErrInvalidInput.
//   - subtotal = Σ(cantidad × precio unitario); total_items = Σ cantidad;
//     total_amount arranca igual al subtotal (sin descuento aún); estado PENDING.
//   - El subtotal queda congelado: solo TotalAmount se recalcula después, y
//     únicamente cuando cambia el descuento.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.TrackingNumber == "" || !entity.ValidOrderType(in.Type) || in.BranchID == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || !item.UnitPrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.orderRepo.GetByTrackingNumber(in.TrackingNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	subtotal := decimal.Zero
	var totalItems int64
	for _, item := range in.Items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
		totalItems += item.Quantity
	}

	order := &entity.Order{
		ID:                  uuid.New().String(),
		TrackingNumber:      in.TrackingNumber,
		Type:                in.Type,
		Status:              entity.OrderStatusPending,
		Subtotal:            subtotal,
		DiscountAmount:      decimal.Zero,
		TotalAmount:         subtotal,
		TotalItems:          totalItems,
		ShippingAddress:     in.ShippingAddress,
		CustomerID:          in.CustomerID,
		FulfillmentBranchID: in.BranchID,
		Audit:               entity.NewAudit(now, userID),
	}
	for _, item := range in.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Audit:     entity.NewAudit(now, userID),
		})
	}

	// Cabecera y líneas en una sola transacción: una falla al escribir líneas
	// no deja una cabecera huérfana.
	err = uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository, _ repository.CouponRepository) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for i := range order.Items {
			if err := orderRepo.CreateItem(&order.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// ToOrderResponse mapea la entidad Order (con líneas si las trae) a su DTO.
func ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:              o.ID,
		TrackingNumber:  o.TrackingNumber,
		Type:            o.Type,
		Status:          o.Status,
		Subtotal:        o.Subtotal,
		DiscountAmount:  o.DiscountAmount,
		TotalAmount:     o.TotalAmount,
		TotalItems:      o.TotalItems,
		ShippingAddress: o.ShippingAddress,
		CustomerID:      o.CustomerID,
		BranchID:        o.FulfillmentBranchID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return resp
}
