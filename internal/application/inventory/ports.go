package inventory

import (
	"context"

	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que el registro del movimiento y la proyección del
// stock se confirmen o reviertan como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}
