package sales

import (
	"context"

	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con repositorios de
// ventas atados a esa tx. Cubre las dos escrituras multi-fila del módulo:
// cabecera+líneas al crear pedido, y pedido+cupón al aplicar descuento.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		couponRepo repository.CouponRepository,
	) error) error
}

// ReceiptGenerator genera la representación PDF de un pedido (comprobante/packing slip).
type ReceiptGenerator interface {
	GenerateReceipt(data ReceiptData) ([]byte, error)
}
