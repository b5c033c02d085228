package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/commerce-pro/internal/application/dto"
	"github.com/tu-usuario/commerce-pro/internal/application/inventory"
	"github.com/tu-usuario/commerce-pro/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario (protegido).
type InventoryHandler struct {
	record *inventory.RecordMovementUseCase
	query  *inventory.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(record *inventory.RecordMovementUseCase, query *inventory.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{record: record, query: query}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Persiste el asiento y proyecta el saldo en una sola transacción.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "type (IN|OUT|TRANSFER|ADJUSTMENT), quantity, product_id, branch_id"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.record.RecordMovement(c.Context(), inventory.RecordMovementInput{
		Type:      in.Type,
		Quantity:  in.Quantity,
		ProductID: in.ProductID,
		BranchID:  in.BranchID,
		OrderID:   in.OrderID,
		Notes:     in.Notes,
		UserID:    userID,
	})
	if err != nil {
		if err == domain.ErrInvalidQuantity {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad debe ser positiva"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(inventory.ToMovementResponse(mov))
}

// GetMovement obtiene un movimiento del libro.
// GET /api/inventory/movements/:id
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	mov, err := h.query.GetMovement(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(mov)
}

// ListMovements lista movimientos, filtrables por sucursal y producto.
// GET /api/inventory/movements?branch_id=&product_id=
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	movs, err := h.query.ListMovements(c.Query("branch_id"), c.Query("product_id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(movs)
}

// DeleteMovement hace borrado lógico de un movimiento. El saldo proyectado
// no se revierte: el libro es histórico, el saldo es el estado vigente.
// DELETE /api/inventory/movements/:id
func (h *InventoryHandler) DeleteMovement(c *fiber.Ctx) error {
	if err := h.query.DeleteMovement(c.Params("id"), GetUserID(c)); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "movimiento eliminado"})
}

// GetBalance godoc
// @Summary      Consultar saldo de stock
// @Description  Devuelve el saldo vigente de un producto en una sucursal. Sin
//
//	movimientos previos el saldo es cero (no 404).
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        branch_id   path  string  true  "ID de sucursal"
// @Param        product_id  path  string  true  "ID de producto"
// @Success      200  {object}  dto.StockBalanceResponse
// @Router       /api/inventory/stock/{branch_id}/{product_id} [get]
func (h *InventoryHandler) GetBalance(c *fiber.Ctx) error {
	balance, err := h.query.GetBalance(c.Params("branch_id"), c.Params("product_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(balance)
}

// ListBalances lista saldos de stock, filtrables por sucursal y producto.
// GET /api/inventory/stock?branch_id=&product_id=
func (h *InventoryHandler) ListBalances(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	balances, err := h.query.ListBalances(c.Query("branch_id"), c.Query("product_id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(balances)
}
