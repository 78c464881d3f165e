package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-pro/internal/application/stock"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

func TestRegisterEntry_ProveedorSumaStockYActualizaPrecio(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)

	created, err := f.entry.RegisterEntry(context.Background(),
		supplierEntry("mat-1", 10, "5.50", businessDate(2024, time.January, 1)))
	require.NoError(t, err)

	require.Len(t, created, 1)
	assert.Equal(t, entity.KindSupplierEntry, created[0].Kind)
	assert.Equal(t, "sup-1", created[0].SupplierID)

	material, _ := f.materials.GetByID("mat-1")
	assert.Equal(t, int64(10), material.CurrentStock)
	assert.True(t, material.UnitPrice.Equal(decimal.RequireFromString("5.50")),
		"la entrada de proveedor debe actualizar el precio de display (último precio gana)")
}

func TestRegisterEntry_VariosItemsCompartenTransactionID(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)
	f.seedMaterial("mat-2", ownerA, 0)

	in := supplierEntry("mat-1", 3, "2", businessDate(2024, time.January, 1))
	in.Items = append(in.Items, stock.EntryItem{
		MaterialID: "mat-2", Quantity: 7, UnitPrice: decimal.NewFromInt(4),
	})

	created, err := f.entry.RegisterEntry(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, created[0].TransactionID, created[1].TransactionID)
}

func TestRegisterEntry_DevolucionNoTocaPrecioDeDisplay(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)
	_, err := f.entry.RegisterEntry(context.Background(),
		supplierEntry("mat-1", 10, "8", businessDate(2024, time.January, 1)))
	require.NoError(t, err)

	_, err = f.entry.RegisterEntry(context.Background(), stock.EntryInput{
		OwnerID:    ownerA,
		UserID:     userA,
		Kind:       entity.KindEmployeeReturn,
		EmployeeID: "emp-1",
		Date:       businessDate(2024, time.January, 2),
		Items: []stock.EntryItem{
			{MaterialID: "mat-1", Quantity: 2, UnitPrice: decimal.NewFromInt(8)},
		},
	})
	require.NoError(t, err)

	material, _ := f.materials.GetByID("mat-1")
	assert.Equal(t, int64(12), material.CurrentStock, "la devolución suma stock")
	assert.True(t, material.UnitPrice.Equal(decimal.NewFromInt(8)),
		"solo las compras a proveedor reescriben el precio de display")
}

func TestRegisterEntry_ValidaExactamenteUnOrigen(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)
	item := stock.EntryItem{MaterialID: "mat-1", Quantity: 1, UnitPrice: decimal.NewFromInt(1)}

	cases := []struct {
		name string
		in   stock.EntryInput
	}{
		{"proveedor sin supplier_id", stock.EntryInput{
			OwnerID: ownerA, UserID: userA, Kind: entity.KindSupplierEntry,
			Items: []stock.EntryItem{item},
		}},
		{"proveedor con employee_id de más", stock.EntryInput{
			OwnerID: ownerA, UserID: userA, Kind: entity.KindSupplierEntry,
			SupplierID: "sup-1", EmployeeID: "emp-1",
			Items: []stock.EntryItem{item},
		}},
		{"devolución de funcionario con supplier_id de más", stock.EntryInput{
			OwnerID: ownerA, UserID: userA, Kind: entity.KindEmployeeReturn,
			EmployeeID: "emp-1", SupplierID: "sup-1",
			Items: []stock.EntryItem{item},
		}},
		{"kind desconocido", stock.EntryInput{
			OwnerID: ownerA, UserID: userA, Kind: "ajuste",
			Items: []stock.EntryItem{item},
		}},
		{"compra imputada a centro de costo", stock.EntryInput{
			OwnerID: ownerA, UserID: userA, Kind: entity.KindSupplierEntry,
			SupplierID: "sup-1", CostCenterID: "cc-1",
			Items: []stock.EntryItem{item},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.entry.RegisterEntry(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegisterEntry_RechazaCantidadYPrecioInvalidos(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)

	in := supplierEntry("mat-1", 0, "5", businessDate(2024, time.January, 1))
	_, err := f.entry.RegisterEntry(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	in = supplierEntry("mat-1", 5, "-1", businessDate(2024, time.January, 1))
	_, err = f.entry.RegisterEntry(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")
}

func TestRegisterEntry_MaterialDeOtroTenant(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-b", ownerB, 0)

	_, err := f.entry.RegisterEntry(context.Background(),
		supplierEntry("mat-b", 5, "3", businessDate(2024, time.January, 1)))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegisterEntry_MaterialInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.entry.RegisterEntry(context.Background(),
		supplierEntry("mat-x", 5, "3", businessDate(2024, time.January, 1)))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// txRunner que ejecuta un hook antes de abrir la transacción: simula una
// escritura concurrente entre la validación previa y el lock de la fila.
type hookedTxRunner struct {
	inner  stock.TxRunner
	before func()
}

func (t *hookedTxRunner) Run(ctx context.Context, fn func(
	movementRepo repository.MovementRepository,
	materialRepo repository.MaterialRepository,
) error) error {
	if t.before != nil {
		t.before()
	}
	return t.inner.Run(ctx, fn)
}

func TestRegisterEntry_MaterialBorradoEntreValidacionYLock(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)

	runner := &hookedTxRunner{
		inner:  &memoryTxRunner{store: f.store},
		before: func() { require.NoError(t, f.materials.Delete("mat-1")) },
	}
	entry := stock.NewRegisterEntryUseCase(runner, f.materials,
		&memorySupplierRepo{byID: map[string]*entity.Supplier{
			"sup-1": {ID: "sup-1", OwnerID: ownerA, Name: "Proveedor Uno", Status: "active"},
		}},
		&memoryEmployeeRepo{byID: map[string]*entity.Employee{}},
		&memoryThirdPartyRepo{byID: map[string]*entity.ThirdParty{}},
		&memoryCostCenterRepo{byID: map[string]*entity.CostCenter{}},
	)

	_, err := entry.RegisterEntry(context.Background(),
		supplierEntry("mat-1", 5, "3", businessDate(2024, time.January, 1)))
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un material borrado en carrera responde not found, no paniquea")
	assert.Empty(t, f.store.movements, "la transacción no deja filas escritas")
}
