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
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

func TestRecalculate_ReparaDeriva(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)
	ctx := context.Background()

	_, err := f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 10, "5", businessDate(2024, time.January, 1)))
	require.NoError(t, err)

	// Simular una edición directa en la BD que desajusta el cache.
	require.NoError(t, f.materials.UpdateStock("mat-1", 99))

	computed, err := f.reconcile.Recalculate(ctx, "mat-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), computed)

	material, _ := f.materials.GetByID("mat-1")
	assert.Equal(t, int64(10), material.CurrentStock, "el cache debe quedar reparado")
}

func TestRecalculate_Idempotente(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)
	ctx := context.Background()

	_, err := f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 7, "5", businessDate(2024, time.January, 1)))
	require.NoError(t, err)
	_, err = f.exit.RegisterExit(ctx, employeeExit(stock.ExitItem{MaterialID: "mat-1", Quantity: 3}))
	require.NoError(t, err)

	first, err := f.reconcile.Recalculate(ctx, "mat-1")
	require.NoError(t, err)
	second, err := f.reconcile.Recalculate(ctx, "mat-1")
	require.NoError(t, err)

	assert.Equal(t, first, second, "recalcular dos veces sin movimientos nuevos da el mismo valor")
	assert.Equal(t, int64(4), first)
}

func TestRecalculate_MaterialInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.reconcile.Recalculate(context.Background(), "mat-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecalculateScoped_RespetaElTenant(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 99)
	ctx := context.Background()

	_, err := f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 6, "5", businessDate(2024, time.January, 1)))
	require.NoError(t, err)

	_, err = f.reconcile.RecalculateScoped(ctx, "mat-1", ownerB)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"otro tenant obtiene el mismo error que si el material no existiera")

	computed, err := f.reconcile.RecalculateScoped(ctx, "mat-1", ownerA)
	require.NoError(t, err)
	assert.Equal(t, int64(6), computed)

	computed, err = f.reconcile.RecalculateScoped(ctx, "mat-1", "")
	require.NoError(t, err, "scope vacío (super_admin) recalcula cualquier tenant")
	assert.Equal(t, int64(6), computed)
}

func TestRecalculateAll_RecorreElScope(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 50) // cache desajustado a propósito
	f.seedMaterial("mat-2", ownerA, 50)
	f.seedMaterial("mat-b", ownerB, 50)
	ctx := context.Background()

	_, err := f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 3, "1", businessDate(2024, time.January, 1)))
	require.NoError(t, err)

	require.NoError(t, f.reconcile.RecalculateAll(ctx, ownerA))

	mat1, _ := f.materials.GetByID("mat-1")
	mat2, _ := f.materials.GetByID("mat-2")
	matB, _ := f.materials.GetByID("mat-b")
	assert.Equal(t, int64(3), mat1.CurrentStock)
	assert.Equal(t, int64(0), mat2.CurrentStock, "material sin movimientos queda en cero")
	assert.Equal(t, int64(50), matB.CurrentStock, "otro tenant no se toca con scope acotado")
}

func TestRecalculateAll_MaterialBorradoDuranteElBarrido(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 99) // cache desajustado a propósito
	f.seedMaterial("mat-2", ownerA, 0)
	ctx := context.Background()

	_, err := f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 4, "1", businessDate(2024, time.January, 1)))
	require.NoError(t, err)

	// mat-2 desaparece entre el listado y su recálculo; el barrido no debe
	// abortar por eso.
	deleted := false
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	reconcile := stock.NewReconcileStockUseCase(&hookedTxRunner{
		inner: &memoryTxRunner{store: f.store},
		before: func() {
			if !deleted {
				deleted = true
				require.NoError(t, f.materials.Delete("mat-2"))
			}
		},
	}, f.materials, log)

	require.NoError(t, reconcile.RecalculateAll(ctx, ownerA))

	mat1, _ := f.materials.GetByID("mat-1")
	assert.Equal(t, int64(4), mat1.CurrentStock, "los materiales restantes sí se reparan")
}

// Escenario de referencia: tras la salida FIFO de 12 (10 @ $5 + 2 @ $7),
// borrar ambas filas de esa salida devuelve el stock a 20.
func TestDeleteMovement_RecalculaElStockDelMaterial(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)
	ctx := context.Background()

	_, err := f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 10, "5", businessDate(2024, time.January, 1)))
	require.NoError(t, err)
	_, err = f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 10, "7", businessDate(2024, time.January, 5)))
	require.NoError(t, err)
	results, err := f.exit.RegisterExit(ctx, employeeExit(stock.ExitItem{MaterialID: "mat-1", Quantity: 12}))
	require.NoError(t, err)
	require.NoError(t, results[0].Err)

	for _, mov := range results[0].Movements {
		require.NoError(t, f.remove.DeleteMovement(ctx, mov.ID, ownerA))
	}

	material, _ := f.materials.GetByID("mat-1")
	assert.Equal(t, int64(20), material.CurrentStock,
		"borrar la salida debe devolver el stock al valor derivado del libro")
}

func TestDeleteMovement_NoExisteOFueraDeScope(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)
	ctx := context.Background()

	err := f.remove.DeleteMovement(ctx, "mov-x", ownerA)
	assert.ErrorIs(t, err, domain.ErrNotFound, "movimiento ausente")

	_, err = f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 5, "5", businessDate(2024, time.January, 1)))
	require.NoError(t, err)
	ledger, _ := f.movements.ListByMaterial("mat-1", "")
	require.NotEmpty(t, ledger)

	err = f.remove.DeleteMovement(ctx, ledger[0].ID, ownerB)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"fuera de scope responde igual que ausente: no se revela existencia")

	err = f.remove.DeleteMovement(ctx, ledger[0].ID, "")
	assert.NoError(t, err, "scope vacío (super_admin) puede borrar cualquier tenant")
	material, _ := f.materials.GetByID("mat-1")
	assert.Equal(t, int64(0), material.CurrentStock)
}

func TestResolveLots_ScopeDeTenant(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-b", ownerB, 0)

	_, err := f.lots.ResolveLots(context.Background(), "mat-b", ownerA)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	lots, err := f.lots.ResolveLots(context.Background(), "mat-b", "")
	assert.NoError(t, err, "super_admin resuelve lotes de cualquier tenant")
	assert.Empty(t, lots)
}

// Propiedad de conservación: para cualquier secuencia de entradas, salidas y
// borrados, el recálculo coincide con la suma independiente sobre el libro.
func TestConservacion_SecuenciaMixta(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)
	ctx := context.Background()

	_, err := f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 10, "5", businessDate(2024, time.January, 1)))
	require.NoError(t, err)
	_, err = f.exit.RegisterExit(ctx, employeeExit(stock.ExitItem{MaterialID: "mat-1", Quantity: 4}))
	require.NoError(t, err)
	_, err = f.entry.RegisterEntry(ctx, stock.EntryInput{
		OwnerID: ownerA, UserID: userA,
		Kind: "third_party_return", ThirdPartyID: "tp-1",
		Date:  businessDate(2024, time.January, 12),
		Items: []stock.EntryItem{{MaterialID: "mat-1", Quantity: 2, UnitPrice: decimal.NewFromInt(5)}},
	})
	require.NoError(t, err)

	ledger, _ := f.movements.ListByMaterial("mat-1", "")
	var independent int64
	for _, m := range ledger {
		independent += m.StockEffect() * m.Quantity
	}

	computed, err := f.reconcile.Recalculate(ctx, "mat-1")
	require.NoError(t, err)
	assert.Equal(t, independent, computed)
	assert.Equal(t, int64(8), computed)
}
