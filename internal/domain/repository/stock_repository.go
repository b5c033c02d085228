package repository

import "github.com/tu-usuario/commerce-pro/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar el saldo de stock
// por sucursal+producto. Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// Get devuelve el saldo; nil si no existe fila para el par (sucursal, producto).
	Get(branchID, productID string) (*entity.StockBalance, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); nil si no existe.
	GetForUpdate(branchID, productID string) (*entity.StockBalance, error)
	Upsert(balance *entity.StockBalance) error
	List(branchID, productID string, limit, offset int) ([]*entity.StockBalance, error)
}
