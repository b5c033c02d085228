package logistics

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/commerce-pro/internal/application/dto"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// ShipmentUseCase casos de uso de envíos: un envío por pedido.
type ShipmentUseCase struct {
	repo       repository.ShipmentRepository
	orderRepo  repository.OrderRepository
	branchRepo repository.BranchRepository
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(repo repository.ShipmentRepository, orderRepo repository.OrderRepository, branchRepo repository.BranchRepository) *ShipmentUseCase {
	return &ShipmentUseCase{repo: repo, orderRepo: orderRepo, branchRepo: branchRepo}
}

// Create crea el envío de un pedido. El pedido y la sucursal de origen deben
// existir; un pedido no puede tener más de un envío y la sucursal debe poder
// despachar (can_ship).
func (uc *ShipmentUseCase) Create(userID string, in dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	if in.OrderID == "" || in.OriginBranchID == "" || in.TrackingNumber == "" || in.Carrier == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	branch, err := uc.branchRepo.GetByID(in.OriginBranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	if !branch.CanShip {
		return nil, domain.ErrConflict
	}
	existing, err := uc.repo.GetByOrderID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	shipment := &entity.Shipment{
		ID:                    uuid.New().String(),
		TrackingNumber:        in.TrackingNumber,
		Carrier:               in.Carrier,
		Status:                entity.ShipmentStatusPending,
		ShippingCost:          in.ShippingCost,
		ShippingAddress:       in.ShippingAddress,
		EstimatedDeliveryDate: in.EstimatedDeliveryDate,
		Notes:                 in.Notes,
		OrderID:               in.OrderID,
		OriginBranchID:        in.OriginBranchID,
		Audit:                 entity.NewAudit(time.Now(), userID),
	}
	if err := uc.repo.Create(shipment); err != nil {
		return nil, err
	}
	return toShipmentResponse(shipment), nil
}

// GetByID obtiene un envío por ID.
func (uc *ShipmentUseCase) GetByID(id string) (*dto.ShipmentResponse, error) {
	shipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}
	return toShipmentResponse(shipment), nil
}

// GetByOrderID obtiene el envío asociado a un pedido.
func (uc *ShipmentUseCase) GetByOrderID(orderID string) (*dto.ShipmentResponse, error) {
	shipment, err := uc.repo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}
	return toShipmentResponse(shipment), nil
}

// Update actualiza estado, transportadora, fechas o notas del envío.
func (uc *ShipmentUseCase) Update(id, userID string, in dto.UpdateShipmentRequest) (*dto.ShipmentResponse, error) {
	shipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil {
		if !entity.ValidShipmentStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		shipment.Status = *in.Status
	}
	if in.Carrier != nil {
		shipment.Carrier = *in.Carrier
	}
	if in.EstimatedDeliveryDate != nil {
		shipment.EstimatedDeliveryDate = in.EstimatedDeliveryDate
	}
	if in.ShippedDate != nil {
		shipment.ShippedDate = in.ShippedDate
	}
	if in.DeliveredDate != nil {
		shipment.DeliveredDate = in.DeliveredDate
	}
	if in.Notes != nil {
		shipment.Notes = *in.Notes
	}
	shipment.Touch(time.Now(), userID)
	if err := uc.repo.Update(shipment); err != nil {
		return nil, err
	}
	return toShipmentResponse(shipment), nil
}

// List lista envíos con paginación.
func (uc *ShipmentUseCase) List(limit, offset int) ([]dto.ShipmentResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShipmentResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShipmentResponse(s))
	}
	return items, nil
}

// Delete hace borrado lógico de un envío.
func (uc *ShipmentUseCase) Delete(id, userID string) error {
	shipment, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if shipment == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id, userID)
}

func toShipmentResponse(s *entity.Shipment) *dto.ShipmentResponse {
	return &dto.ShipmentResponse{
		ID:                    s.ID,
		OrderID:               s.OrderID,
		OriginBranchID:        s.OriginBranchID,
		TrackingNumber:        s.TrackingNumber,
		Carrier:               s.Carrier,
		Status:                s.Status,
		ShippingCost:          s.ShippingCost,
		ShippingAddress:       s.ShippingAddress,
		EstimatedDeliveryDate: s.EstimatedDeliveryDate,
		ShippedDate:           s.ShippedDate,
		DeliveredDate:         s.DeliveredDate,
		Notes:                 s.Notes,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}
