package stock

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	domstock "github.com/tu-usuario/almacen-pro/internal/domain/stock"
)

// ResolveLotsUseCase consulta los lotes abiertos de un material. Antes de
// resolver corre el reconciliador sobre el material (lectura defensiva: el
// caller puede estar a punto de decidir una salida mirando estos lotes).
type ResolveLotsUseCase struct {
	movementRepo repository.MovementRepository
	materialRepo repository.MaterialRepository
	reconciler   *ReconcileStockUseCase
}

// NewResolveLotsUseCase construye el caso de uso.
func NewResolveLotsUseCase(
	movementRepo repository.MovementRepository,
	materialRepo repository.MaterialRepository,
	reconciler *ReconcileStockUseCase,
) *ResolveLotsUseCase {
	return &ResolveLotsUseCase{
		movementRepo: movementRepo,
		materialRepo: materialRepo,
		reconciler:   reconciler,
	}
}

// ResolveLots devuelve los lotes con disponibilidad > 0 del material, del más
// antiguo al más nuevo. ownerScope vacío = sin filtro de tenant (super_admin).
func (uc *ResolveLotsUseCase) ResolveLots(ctx context.Context, materialID, ownerScope string) ([]entity.Lot, error) {
	material, err := uc.materialRepo.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if material == nil || (ownerScope != "" && material.OwnerID != ownerScope) {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.reconciler.Recalculate(ctx, materialID); err != nil {
		return nil, err
	}
	ledger, err := uc.movementRepo.ListByMaterial(materialID, ownerScope)
	if err != nil {
		return nil, err
	}
	return domstock.ResolveLots(ledger), nil
}
