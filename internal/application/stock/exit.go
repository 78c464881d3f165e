package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	domstock "github.com/tu-usuario/almacen-pro/internal/domain/stock"
)

// RegisterExitUseCase procesa salidas con costeo FIFO: cada ítem se decompone
// contra los lotes abiertos del material, del más antiguo al más nuevo, y
// genera una fila del libro por lote consumido (todas con el mismo
// TransactionID). El bloque resolver-validar-escribir de cada ítem corre en
// una sola transacción con la fila del material bloqueada, así una salida que
// no puede satisfacerse completa no deja filas parciales.
//
// Los ítems del payload son independientes entre sí (política del sistema):
// un ítem sin stock falla con InsufficientStockError en su resultado y los
// demás ítems igual se confirman.
type RegisterExitUseCase struct {
	txRunner       TxRunner
	materialRepo   repository.MaterialRepository
	employeeRepo   repository.EmployeeRepository
	thirdPartyRepo repository.ThirdPartyRepository
	costCenterRepo repository.CostCenterRepository
}

// NewRegisterExitUseCase construye el caso de uso.
func NewRegisterExitUseCase(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	employeeRepo repository.EmployeeRepository,
	thirdPartyRepo repository.ThirdPartyRepository,
	costCenterRepo repository.CostCenterRepository,
) *RegisterExitUseCase {
	return &RegisterExitUseCase{
		txRunner:       txRunner,
		materialRepo:   materialRepo,
		employeeRepo:   employeeRepo,
		thirdPartyRepo: thirdPartyRepo,
		costCenterRepo: costCenterRepo,
	}
}

// ExitItem un material del payload de salida. El precio no viene del caller:
// lo fijan los lotes FIFO consumidos.
type ExitItem struct {
	MaterialID string
	Quantity   int64
}

// ExitInput entrada para RegisterExit. DestinationType determina el destino:
// employee (EmployeeID) o third_party (ThirdPartyID); exactamente uno.
type ExitInput struct {
	OwnerID         string
	UserID          string
	DestinationType string
	EmployeeID      string
	ThirdPartyID    string
	CostCenterID    string
	Date            time.Time
	Notes           string
	Items           []ExitItem
}

// ExitItemResult resultado por ítem: las filas creadas o el error que lo
// rechazó (típicamente *domain.InsufficientStockError con el faltante).
type ExitItemResult struct {
	MaterialID string
	Movements  []entity.Movement
	Err        error
}

// Succeeded indica si el ítem se confirmó.
func (r *ExitItemResult) Succeeded() bool { return r.Err == nil }

// RegisterExit valida el payload y procesa cada ítem en su propia
// transacción. Devuelve un resultado por ítem en el orden del payload; el
// error de retorno solo se usa para fallos de validación del payload entero.
func (uc *RegisterExitUseCase) RegisterExit(ctx context.Context, input ExitInput) ([]ExitItemResult, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	now := time.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}
	// Un TransactionID para toda la salida lógica: agrupa el fan-out por
	// lotes y permite auditar/deshacer la acción del usuario como unidad.
	txID := uuid.New().String()

	results := make([]ExitItemResult, 0, len(input.Items))
	for _, item := range input.Items {
		movs, err := uc.processItem(ctx, input, item, txID, date, now)
		results = append(results, ExitItemResult{
			MaterialID: item.MaterialID,
			Movements:  movs,
			Err:        err,
		})
	}
	return results, nil
}

// processItem ejecuta la secuencia bloquear → resolver lotes → validar →
// escribir filas → refrescar stock cacheado, todo dentro de una transacción.
func (uc *RegisterExitUseCase) processItem(
	ctx context.Context,
	input ExitInput,
	item ExitItem,
	txID string,
	date, now time.Time,
) ([]entity.Movement, error) {
	var created []entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movementRepo repository.MovementRepository,
		materialRepo repository.MaterialRepository,
	) error {
		material, err := materialRepo.GetForUpdate(item.MaterialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		if material.OwnerID != input.OwnerID {
			return domain.ErrForbidden
		}

		ledger, err := movementRepo.ListByMaterial(item.MaterialID, input.OwnerID)
		if err != nil {
			return err
		}
		lots := domstock.ResolveLots(ledger)
		plan, err := domstock.PlanExit(item.MaterialID, lots, item.Quantity)
		if err != nil {
			return err
		}

		for _, line := range plan {
			mov := entity.Movement{
				ID:              uuid.New().String(),
				TransactionID:   txID,
				OwnerID:         input.OwnerID,
				MaterialID:      item.MaterialID,
				Kind:            entity.KindExit,
				Quantity:        line.Quantity,
				UnitPrice:       line.Lot.UnitPrice,
				Date:            date,
				EmployeeID:      input.EmployeeID,
				ThirdPartyID:    input.ThirdPartyID,
				DestinationType: input.DestinationType,
				CostCenterID:    input.CostCenterID,
				Notes:           input.Notes,
				CreatedAt:       now,
				CreatedBy:       input.UserID,
			}
			if err := movementRepo.Create(&mov); err != nil {
				return err
			}
			ledger = append(ledger, mov)
			created = append(created, mov)
		}

		// Refrescar el cache desde el libro (incluidas las filas recién
		// escritas), no con una resta a ciegas sobre el valor cacheado.
		return materialRepo.UpdateStock(item.MaterialID, domstock.ComputeStock(ledger))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// validate verifica destino, ítems y referencias del payload completo.
func (uc *RegisterExitUseCase) validate(input ExitInput) error {
	if input.OwnerID == "" || input.UserID == "" || len(input.Items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range input.Items {
		if item.MaterialID == "" || item.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	}

	switch input.DestinationType {
	case entity.DestinationEmployee:
		if input.EmployeeID == "" || input.ThirdPartyID != "" {
			return domain.ErrInvalidInput
		}
		employee, err := uc.employeeRepo.GetByID(input.EmployeeID)
		if err != nil {
			return err
		}
		if employee == nil || employee.OwnerID != input.OwnerID {
			return domain.ErrNotFound
		}
	case entity.DestinationThirdParty:
		if input.ThirdPartyID == "" || input.EmployeeID != "" {
			return domain.ErrInvalidInput
		}
		thirdParty, err := uc.thirdPartyRepo.GetByID(input.ThirdPartyID)
		if err != nil {
			return err
		}
		if thirdParty == nil || thirdParty.OwnerID != input.OwnerID {
			return domain.ErrNotFound
		}
	default:
		return domain.ErrInvalidInput
	}

	if input.CostCenterID != "" {
		costCenter, err := uc.costCenterRepo.GetByID(input.CostCenterID)
		if err != nil {
			return err
		}
		if costCenter == nil || costCenter.OwnerID != input.OwnerID {
			return domain.ErrNotFound
		}
	}
	return nil
}
