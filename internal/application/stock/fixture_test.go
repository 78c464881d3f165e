package stock_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/application/stock"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

const (
	ownerA = "owner-a"
	ownerB = "owner-b"
	userA  = "user-a"
)

// fixture arma todos los casos de uso de stock sobre los fakes en memoria.
type fixture struct {
	store     *memoryStore
	movements *memoryMovementRepo
	materials *memoryMaterialRepo

	entry     *stock.RegisterEntryUseCase
	exit      *stock.RegisterExitUseCase
	reconcile *stock.ReconcileStockUseCase
	lots      *stock.ResolveLotsUseCase
	remove    *stock.DeleteMovementUseCase
}

func newFixture() *fixture {
	store := newMemoryStore()
	movements := &memoryMovementRepo{store: store}
	materials := &memoryMaterialRepo{store: store}
	txRunner := &memoryTxRunner{store: store}

	suppliers := &memorySupplierRepo{byID: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", OwnerID: ownerA, Name: "Proveedor Uno", Status: "active"},
	}}
	employees := &memoryEmployeeRepo{byID: map[string]*entity.Employee{
		"emp-1": {ID: "emp-1", OwnerID: ownerA, Name: "Funcionario Uno", Status: "active"},
	}}
	thirdParties := &memoryThirdPartyRepo{byID: map[string]*entity.ThirdParty{
		"tp-1": {ID: "tp-1", OwnerID: ownerA, Name: "Tercero Uno", Status: "active"},
	}}
	costCenters := &memoryCostCenterRepo{byID: map[string]*entity.CostCenter{
		"cc-1": {ID: "cc-1", OwnerID: ownerA, Code: "CC-001", Name: "Obras", Status: "active"},
	}}

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	reconcile := stock.NewReconcileStockUseCase(txRunner, materials, log)

	return &fixture{
		store:     store,
		movements: movements,
		materials: materials,
		entry:     stock.NewRegisterEntryUseCase(txRunner, materials, suppliers, employees, thirdParties, costCenters),
		exit:      stock.NewRegisterExitUseCase(txRunner, materials, employees, thirdParties, costCenters),
		reconcile: reconcile,
		lots:      stock.NewResolveLotsUseCase(movements, materials, reconcile),
		remove:    stock.NewDeleteMovementUseCase(txRunner),
	}
}

func (f *fixture) seedMaterial(id string, ownerID string, currentStock int64) {
	f.store.materials[id] = entity.Material{
		ID:           id,
		OwnerID:      ownerID,
		Name:         "Material " + id,
		Unit:         "UN",
		Status:       "active",
		UnitPrice:    decimal.Zero,
		CurrentStock: currentStock,
	}
}

func businessDate(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func supplierEntry(materialID string, qty int64, price string, date time.Time) stock.EntryInput {
	return stock.EntryInput{
		OwnerID:    ownerA,
		UserID:     userA,
		Kind:       entity.KindSupplierEntry,
		SupplierID: "sup-1",
		Date:       date,
		Items: []stock.EntryItem{
			{MaterialID: materialID, Quantity: qty, UnitPrice: decimal.RequireFromString(price)},
		},
	}
}

func employeeExit(items ...stock.ExitItem) stock.ExitInput {
	return stock.ExitInput{
		OwnerID:         ownerA,
		UserID:          userA,
		DestinationType: entity.DestinationEmployee,
		EmployeeID:      "emp-1",
		CostCenterID:    "cc-1",
		Date:            businessDate(2024, time.January, 10),
		Items:           items,
	}
}
