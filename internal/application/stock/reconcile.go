package stock

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	domstock "github.com/tu-usuario/almacen-pro/internal/domain/stock"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

const reconcilePageSize = 200

// ReconcileStockUseCase recalcula el stock autoritativo de un material desde
// el libro completo y repara el cache current_stock cuando detecta deriva
// (ediciones directas en la BD, fallos parciales). La deriva reparada se
// loguea como warning, nunca como error: el auto-curado es el comportamiento
// esperado.
type ReconcileStockUseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	log          *logger.Logger
}

// NewReconcileStockUseCase construye el caso de uso.
func NewReconcileStockUseCase(txRunner TxRunner, materialRepo repository.MaterialRepository, log *logger.Logger) *ReconcileStockUseCase {
	return &ReconcileStockUseCase{txRunner: txRunner, materialRepo: materialRepo, log: log}
}

// Recalculate pliega el libro del material (entradas suman, salidas restan,
// truncado en cero) y reescribe el cache si difiere. Idempotente: dos llamadas
// consecutivas sin movimientos nuevos devuelven el mismo valor.
func (uc *ReconcileStockUseCase) Recalculate(ctx context.Context, materialID string) (int64, error) {
	var computed int64
	err := uc.txRunner.Run(ctx, func(
		movementRepo repository.MovementRepository,
		materialRepo repository.MaterialRepository,
	) error {
		material, err := materialRepo.GetForUpdate(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		ledger, err := movementRepo.ListByMaterial(materialID, "")
		if err != nil {
			return err
		}
		computed = domstock.ComputeStock(ledger)
		if computed == material.CurrentStock {
			return nil
		}
		uc.log.Warn().
			Str("material_id", materialID).
			Int64("cached_stock", material.CurrentStock).
			Int64("computed_stock", computed).
			Msg("deriva de stock detectada y reparada")
		return materialRepo.UpdateStock(materialID, computed)
	})
	if err != nil {
		return 0, err
	}
	return computed, nil
}

// RecalculateScoped recalcula tras verificar que el material pertenece al
// scope del caller (vacío = super_admin). Fuera de scope responde ErrNotFound,
// igual que ausente: no se revela la existencia de materiales de otros tenants.
func (uc *ReconcileStockUseCase) RecalculateScoped(ctx context.Context, materialID, ownerScope string) (int64, error) {
	material, err := uc.materialRepo.GetByID(materialID)
	if err != nil {
		return 0, err
	}
	if material == nil || (ownerScope != "" && material.OwnerID != ownerScope) {
		return 0, domain.ErrNotFound
	}
	return uc.Recalculate(ctx, materialID)
}

// RecalculateAll recorre todos los materiales del scope (ownerID vacío =
// todos los tenants) y recalcula cada uno. Operación de mantenimiento;
// también se usa defensivamente antes de lecturas que dependen del cache.
// Un fallo en un material (p.ej. borrado durante el barrido) se loguea y
// el barrido continúa con el resto.
func (uc *ReconcileStockUseCase) RecalculateAll(ctx context.Context, ownerID string) error {
	offset := 0
	for {
		materials, err := uc.materialRepo.ListByOwner(ownerID, reconcilePageSize, offset)
		if err != nil {
			return err
		}
		for _, material := range materials {
			if _, err := uc.Recalculate(ctx, material.ID); err != nil {
				uc.log.Warn().
					Err(err).
					Str("material_id", material.ID).
					Msg("material omitido durante el recálculo masivo")
			}
		}
		if len(materials) < reconcilePageSize {
			return nil
		}
		offset += reconcilePageSize
	}
}
