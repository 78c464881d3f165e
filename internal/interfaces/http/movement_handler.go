package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/stock"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// MovementHandler maneja el libro de movimientos: entradas, salidas FIFO,
// borrado, lotes y recálculo de stock (protegido).
type MovementHandler struct {
	entryUC     *stock.RegisterEntryUseCase
	exitUC      *stock.RegisterExitUseCase
	deleteUC    *stock.DeleteMovementUseCase
	lotsUC      *stock.ResolveLotsUseCase
	reconcileUC *stock.ReconcileStockUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(
	entryUC *stock.RegisterEntryUseCase,
	exitUC *stock.RegisterExitUseCase,
	deleteUC *stock.DeleteMovementUseCase,
	lotsUC *stock.ResolveLotsUseCase,
	reconcileUC *stock.ReconcileStockUseCase,
) *MovementHandler {
	return &MovementHandler{
		entryUC:     entryUC,
		exitUC:      exitUC,
		deleteUC:    deleteUC,
		lotsUC:      lotsUC,
		reconcileUC: reconcileUC,
	}
}

// RegisterEntry godoc
// @Summary      Registrar entrada (compra a proveedor o devolución)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntryRequest  true  "kind, origen según kind, items con precio"
// @Success      201   {array}   dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/entries [post]
func (h *MovementHandler) RegisterEntry(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	userID := GetUserID(c)
	if ownerID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movements, err := h.entryUC.RegisterEntryFromRequest(c.Context(), ownerID, userID, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponses(movements))
}

// RegisterExit godoc
// @Summary      Registrar salida con costeo FIFO
// @Description  Cada ítem se procesa de forma independiente: los que caben se
//
//	confirman (una fila por lote consumido, mismo transaction_id) y
//	los que no, se reportan con el faltante en su resultado.
//
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterExitRequest  true  "destination_type, destino, items sin precio"
// @Success      200   {array}   dto.ExitItemResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/exits [post]
func (h *MovementHandler) RegisterExit(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	userID := GetUserID(c)
	if ownerID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	results, err := h.exitUC.RegisterExitFromRequest(c.Context(), ownerID, userID, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.ExitItemResultResponse, 0, len(results))
	for i := range results {
		out = append(out, toExitItemResultResponse(&results[i]))
	}
	return c.JSON(out)
}

// DeleteMovement godoc
// @Summary      Eliminar un movimiento y recalcular el stock del material
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) DeleteMovement(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.deleteUC.DeleteMovement(c.Context(), id, ScopeOwner(c)); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento eliminado"})
}

// ResolveLots godoc
// @Summary      Lotes FIFO abiertos de un material
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del material"
// @Success      200  {array}   dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/lots [get]
func (h *MovementHandler) ResolveLots(c *fiber.Ctx) error {
	id := c.Params("id")
	lots, err := h.lotsUC.ResolveLots(c.Context(), id, ScopeOwner(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.LotResponse, 0, len(lots))
	for _, lot := range lots {
		out = append(out, dto.LotResponse{
			UnitPrice:    lot.UnitPrice,
			EntryDate:    lot.EntryDate,
			SupplierID:   lot.SupplierID,
			TotalEntered: lot.TotalEntered,
			Available:    lot.Available,
		})
	}
	return c.JSON(out)
}

// Recalculate godoc
// @Summary      Recalcular el stock cacheado de un material desde el libro
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del material"
// @Success      200  {object}  dto.RecalculateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/recalculate [post]
func (h *MovementHandler) Recalculate(c *fiber.Ctx) error {
	id := c.Params("id")
	computed, err := h.reconcileUC.RecalculateScoped(c.Context(), id, ScopeOwner(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.RecalculateResponse{MaterialID: id, CurrentStock: computed})
}

// RecalculateAll godoc
// @Summary      Recalcular el stock de todos los materiales del scope
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/movements/recalculate-all [post]
func (h *MovementHandler) RecalculateAll(c *fiber.Ctx) error {
	if err := h.reconcileUC.RecalculateAll(c.Context(), ScopeOwner(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "stock recalculado"})
}

// mapDomainError traduce errores de dominio a códigos HTTP.
func mapDomainError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":      "INSUFFICIENT_STOCK",
			"message":   insufficient.Error(),
			"available": insufficient.Available,
			"requested": insufficient.Requested,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:              m.ID,
		TransactionID:   m.TransactionID,
		MaterialID:      m.MaterialID,
		Kind:            m.Kind,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		TotalValue:      m.TotalValue(),
		Date:            m.Date,
		SupplierID:      m.SupplierID,
		EmployeeID:      m.EmployeeID,
		ThirdPartyID:    m.ThirdPartyID,
		DestinationType: m.DestinationType,
		CostCenterID:    m.CostCenterID,
		Notes:           m.Notes,
	}
}

func toMovementResponses(movements []entity.Movement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(movements))
	for i := range movements {
		out = append(out, toMovementResponse(&movements[i]))
	}
	return out
}

func toExitItemResultResponse(r *stock.ExitItemResult) dto.ExitItemResultResponse {
	out := dto.ExitItemResultResponse{
		MaterialID: r.MaterialID,
		Succeeded:  r.Succeeded(),
		Movements:  toMovementResponses(r.Movements),
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
		var insufficient *domain.InsufficientStockError
		if errors.As(r.Err, &insufficient) {
			out.Available = insufficient.Available
			out.Requested = insufficient.Requested
		}
	}
	return out
}
