package sales

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// ReceiptData datos resueltos para el comprobante PDF de un pedido.
type ReceiptData struct {
	TrackingNumber  string
	OrderType       string
	Status          string
	BranchName      string
	BranchAddress   string
	CustomerName    string
	ShippingAddress string
	Date            string
	Lines           []ReceiptLine
	Subtotal        decimal.Decimal
	DiscountAmount  decimal.Decimal
	TotalAmount     decimal.Decimal
	TotalItems      int64
}

// ReceiptLine línea del comprobante con el producto resuelto.
type ReceiptLine struct {
	SKU         string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// ReceiptUseCase genera el comprobante PDF (packing slip) de un pedido.
type ReceiptUseCase struct {
	orderRepo   repository.OrderRepository
	branchRepo  repository.BranchRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	generator   ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(
	orderRepo repository.OrderRepository,
	branchRepo repository.BranchRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		orderRepo:   orderRepo,
		branchRepo:  branchRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		generator:   generator,
	}
}

// DownloadReceipt resuelve los datos del pedido (sucursal, cliente, productos) y
// genera el PDF. Retorna (pdfBytes, filename, nil) o domain.ErrNotFound si el
// pedido no existe.
func (uc *ReceiptUseCase) DownloadReceipt(orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}

	data := ReceiptData{
		TrackingNumber:  order.TrackingNumber,
		OrderType:       order.Type,
		Status:          order.Status,
		ShippingAddress: order.ShippingAddress,
		Date:            order.CreatedAt.Format("2006-01-02 15:04"),
		Subtotal:        order.Subtotal,
		DiscountAmount:  order.DiscountAmount,
		TotalAmount:     order.TotalAmount,
		TotalItems:      order.TotalItems,
	}

	branch, err := uc.branchRepo.GetByID(order.FulfillmentBranchID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener sucursal: %w", err)
	}
	if branch != nil {
		data.BranchName = branch.Name
		data.BranchAddress = branch.Address
	}

	if order.CustomerID != "" {
		customer, err := uc.userRepo.GetByID(order.CustomerID)
		if err != nil {
			return nil, "", fmt.Errorf("receipt: obtener cliente: %w", err)
		}
		if customer != nil {
			data.CustomerName = customer.FirstName + " " + customer.LastName
		}
	}

	items, err := uc.orderRepo.ListItems(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener líneas: %w", err)
	}
	for _, item := range items {
		line := ReceiptLine{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)),
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, "", fmt.Errorf("receipt: obtener producto: %w", err)
		}
		if product != nil {
			line.SKU = product.SKU
			line.ProductName = product.Name
		} else {
			line.ProductName = item.ProductID
		}
		data.Lines = append(data.Lines, line)
	}

	pdfBytes, err = uc.generator.GenerateReceipt(data)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, "pedido-" + order.TrackingNumber + ".pdf", nil
}
