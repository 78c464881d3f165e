package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// RegisterEntryUseCase registra entradas al almacén: compras a proveedor y
// devoluciones de funcionarios o terceros. Cada ítem produce una fila del
// libro con su propio precio unitario; todo el payload se escribe en una
// sola transacción con la fila del material bloqueada.
type RegisterEntryUseCase struct {
	txRunner       TxRunner
	materialRepo   repository.MaterialRepository
	supplierRepo   repository.SupplierRepository
	employeeRepo   repository.EmployeeRepository
	thirdPartyRepo repository.ThirdPartyRepository
	costCenterRepo repository.CostCenterRepository
}

// NewRegisterEntryUseCase construye el caso de uso.
func NewRegisterEntryUseCase(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	supplierRepo repository.SupplierRepository,
	employeeRepo repository.EmployeeRepository,
	thirdPartyRepo repository.ThirdPartyRepository,
	costCenterRepo repository.CostCenterRepository,
) *RegisterEntryUseCase {
	return &RegisterEntryUseCase{
		txRunner:       txRunner,
		materialRepo:   materialRepo,
		supplierRepo:   supplierRepo,
		employeeRepo:   employeeRepo,
		thirdPartyRepo: thirdPartyRepo,
		costCenterRepo: costCenterRepo,
	}
}

// EntryItem un material del payload de entrada, con su precio de lote.
type EntryItem struct {
	MaterialID string
	Quantity   int64
	UnitPrice  decimal.Decimal
}

// EntryInput entrada para RegisterEntry. Kind determina el origen: proveedor
// (SupplierID), devolución de funcionario (EmployeeID) o de tercero
// (ThirdPartyID); exactamente uno debe venir informado.
type EntryInput struct {
	OwnerID      string
	UserID       string
	Kind         string
	SupplierID   string
	EmployeeID   string
	ThirdPartyID string
	CostCenterID string
	Date         time.Time
	Notes        string
	Items        []EntryItem
}

// RegisterEntry valida el payload, verifica origen y materiales dentro del
// tenant, y escribe una fila del libro por ítem. Las entradas de proveedor
// además actualizan el precio de display del material (último precio gana;
// convención independiente del costeo FIFO).
func (uc *RegisterEntryUseCase) RegisterEntry(ctx context.Context, input EntryInput) ([]entity.Movement, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	// Materiales: existen y pertenecen al tenant del caller.
	for _, item := range input.Items {
		material, err := uc.materialRepo.GetByID(item.MaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil {
			return nil, domain.ErrNotFound
		}
		if material.OwnerID != input.OwnerID {
			return nil, domain.ErrForbidden
		}
	}

	now := time.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}
	txID := uuid.New().String()

	var created []entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movementRepo repository.MovementRepository,
		materialRepo repository.MaterialRepository,
	) error {
		for _, item := range input.Items {
			material, err := materialRepo.GetForUpdate(item.MaterialID)
			if err != nil {
				return err
			}
			// El material pudo ser borrado entre la validación y el lock.
			if material == nil {
				return domain.ErrNotFound
			}
			mov := entity.Movement{
				ID:            uuid.New().String(),
				TransactionID: txID,
				OwnerID:       input.OwnerID,
				MaterialID:    item.MaterialID,
				Kind:          input.Kind,
				Quantity:      item.Quantity,
				UnitPrice:     item.UnitPrice,
				Date:          date,
				SupplierID:    input.SupplierID,
				EmployeeID:    input.EmployeeID,
				ThirdPartyID:  input.ThirdPartyID,
				CostCenterID:  input.CostCenterID,
				Notes:         input.Notes,
				CreatedAt:     now,
				CreatedBy:     input.UserID,
			}
			if err := movementRepo.Create(&mov); err != nil {
				return err
			}
			if err := materialRepo.UpdateStock(item.MaterialID, material.CurrentStock+item.Quantity); err != nil {
				return err
			}
			if input.Kind == entity.KindSupplierEntry {
				if err := materialRepo.UpdateUnitPrice(item.MaterialID, item.UnitPrice); err != nil {
					return err
				}
			}
			created = append(created, mov)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// validate verifica kind, exactamente-un-origen, ítems y referencias.
func (uc *RegisterEntryUseCase) validate(input EntryInput) error {
	if input.OwnerID == "" || input.UserID == "" || len(input.Items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range input.Items {
		if item.MaterialID == "" || item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return domain.ErrInvalidInput
		}
	}

	switch input.Kind {
	case entity.KindSupplierEntry:
		if input.SupplierID == "" || input.EmployeeID != "" || input.ThirdPartyID != "" {
			return domain.ErrInvalidInput
		}
		// Las compras a proveedor no se imputan a centros de costo.
		if input.CostCenterID != "" {
			return domain.ErrInvalidInput
		}
		supplier, err := uc.supplierRepo.GetByID(input.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil || supplier.OwnerID != input.OwnerID {
			return domain.ErrNotFound
		}
	case entity.KindEmployeeReturn:
		if input.EmployeeID == "" || input.SupplierID != "" || input.ThirdPartyID != "" {
			return domain.ErrInvalidInput
		}
		employee, err := uc.employeeRepo.GetByID(input.EmployeeID)
		if err != nil {
			return err
		}
		if employee == nil || employee.OwnerID != input.OwnerID {
			return domain.ErrNotFound
		}
	case entity.KindThirdPartyReturn:
		if input.ThirdPartyID == "" || input.SupplierID != "" || input.EmployeeID != "" {
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
