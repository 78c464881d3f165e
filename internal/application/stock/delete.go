package stock

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	domstock "github.com/tu-usuario/almacen-pro/internal/domain/stock"
)

// DeleteMovementUseCase borra una fila del libro y refresca el stock cacheado
// del material afectado en la misma transacción: un borrado nunca deja un
// cache desactualizado.
type DeleteMovementUseCase struct {
	txRunner TxRunner
}

// NewDeleteMovementUseCase construye el caso de uso.
func NewDeleteMovementUseCase(txRunner TxRunner) *DeleteMovementUseCase {
	return &DeleteMovementUseCase{txRunner: txRunner}
}

// DeleteMovement borra el movimiento si existe y está dentro del scope del
// caller (ownerScope vacío = super_admin, sin filtro). Devuelve ErrNotFound
// tanto para ausente como para fuera de scope: no se revela la existencia de
// filas de otros tenants.
func (uc *DeleteMovementUseCase) DeleteMovement(ctx context.Context, movementID, ownerScope string) error {
	if movementID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		movementRepo repository.MovementRepository,
		materialRepo repository.MaterialRepository,
	) error {
		movement, err := movementRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if movement == nil || (ownerScope != "" && movement.OwnerID != ownerScope) {
			return domain.ErrNotFound
		}

		if _, err := materialRepo.GetForUpdate(movement.MaterialID); err != nil {
			return err
		}
		if err := movementRepo.Delete(movementID); err != nil {
			return err
		}

		ledger, err := movementRepo.ListByMaterial(movement.MaterialID, "")
		if err != nil {
			return err
		}
		return materialRepo.UpdateStock(movement.MaterialID, domstock.ComputeStock(ledger))
	})
}
