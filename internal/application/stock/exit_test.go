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
)

// Escenario de referencia: material en 0, entrada de 10 @ $5 (01-ene),
// entrada de 10 @ $7 (05-ene), salida de 12 el 10-ene hacia un funcionario.
// Deben salir dos filas (10 @ $5 y 2 @ $7), stock resultante 8 y el lote
// remanente 8 unidades @ $7.
func TestRegisterExit_FanOutFIFOEnDosFilas(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)
	ctx := context.Background()

	_, err := f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 10, "5", businessDate(2024, time.January, 1)))
	require.NoError(t, err)
	_, err = f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 10, "7", businessDate(2024, time.January, 5)))
	require.NoError(t, err)

	results, err := f.exit.RegisterExit(ctx, employeeExit(stock.ExitItem{MaterialID: "mat-1", Quantity: 12}))
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	movs := results[0].Movements
	require.Len(t, movs, 2, "la salida de 12 debe fragmentarse en una fila por lote")
	assert.Equal(t, int64(10), movs[0].Quantity)
	assert.True(t, movs[0].UnitPrice.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, int64(2), movs[1].Quantity)
	assert.True(t, movs[1].UnitPrice.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, movs[0].TransactionID, movs[1].TransactionID,
		"las filas de una misma salida lógica comparten TransactionID")
	for _, m := range movs {
		assert.Equal(t, entity.KindExit, m.Kind)
		assert.Equal(t, "emp-1", m.EmployeeID)
		assert.Equal(t, "cc-1", m.CostCenterID)
	}

	material, _ := f.materials.GetByID("mat-1")
	assert.Equal(t, int64(8), material.CurrentStock)

	lots, err := f.lots.ResolveLots(ctx, "mat-1", ownerA)
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.True(t, lots[0].UnitPrice.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, int64(8), lots[0].Available)
}

func TestRegisterExit_StockInsuficienteNoEscribeFilas(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)
	ctx := context.Background()

	_, err := f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 5, "5", businessDate(2024, time.January, 1)))
	require.NoError(t, err)

	results, err := f.exit.RegisterExit(ctx, employeeExit(stock.ExitItem{MaterialID: "mat-1", Quantity: 9}))
	require.NoError(t, err, "la validación del payload entero no falla; el rechazo es por ítem")
	require.Len(t, results, 1)

	require.Error(t, results[0].Err)
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, results[0].Err, &insufficient)
	assert.Equal(t, int64(5), insufficient.Available)
	assert.Equal(t, int64(9), insufficient.Requested)

	ledger, _ := f.movements.ListByMaterial("mat-1", "")
	assert.Len(t, ledger, 1, "solo la entrada: la salida rechazada no deja filas parciales")
	material, _ := f.materials.GetByID("mat-1")
	assert.Equal(t, int64(5), material.CurrentStock)
}

func TestRegisterExit_ItemsIndependientes_ExitoParcial(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)
	f.seedMaterial("mat-2", ownerA, 0)
	ctx := context.Background()

	_, err := f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 10, "5", businessDate(2024, time.January, 1)))
	require.NoError(t, err)
	_, err = f.entry.RegisterEntry(ctx, supplierEntry("mat-2", 1, "3", businessDate(2024, time.January, 1)))
	require.NoError(t, err)

	results, err := f.exit.RegisterExit(ctx, employeeExit(
		stock.ExitItem{MaterialID: "mat-1", Quantity: 4},
		stock.ExitItem{MaterialID: "mat-2", Quantity: 5},
	))
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].Succeeded(), "el ítem con stock debe confirmarse aunque otro falle")
	assert.False(t, results[1].Succeeded())
	assert.True(t, domain.IsInsufficientStock(results[1].Err))

	mat1, _ := f.materials.GetByID("mat-1")
	mat2, _ := f.materials.GetByID("mat-2")
	assert.Equal(t, int64(6), mat1.CurrentStock)
	assert.Equal(t, int64(1), mat2.CurrentStock, "el ítem rechazado no altera su material")
}

func TestRegisterExit_ValidaDestino(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 5)
	item := stock.ExitItem{MaterialID: "mat-1", Quantity: 1}

	cases := []struct {
		name string
		in   stock.ExitInput
	}{
		{"sin destino", stock.ExitInput{
			OwnerID: ownerA, UserID: userA, Items: []stock.ExitItem{item},
		}},
		{"destino funcionario sin employee_id", stock.ExitInput{
			OwnerID: ownerA, UserID: userA,
			DestinationType: entity.DestinationEmployee,
			Items:           []stock.ExitItem{item},
		}},
		{"dos destinos a la vez", stock.ExitInput{
			OwnerID: ownerA, UserID: userA,
			DestinationType: entity.DestinationEmployee,
			EmployeeID:      "emp-1", ThirdPartyID: "tp-1",
			Items: []stock.ExitItem{item},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.exit.RegisterExit(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegisterExit_DestinoTercero(t *testing.T) {
	f := newFixture()
	f.seedMaterial("mat-1", ownerA, 0)
	ctx := context.Background()

	_, err := f.entry.RegisterEntry(ctx, supplierEntry("mat-1", 6, "2", businessDate(2024, time.January, 1)))
	require.NoError(t, err)

	results, err := f.exit.RegisterExit(ctx, stock.ExitInput{
		OwnerID:         ownerA,
		UserID:          userA,
		DestinationType: entity.DestinationThirdParty,
		ThirdPartyID:    "tp-1",
		Date:            businessDate(2024, time.January, 2),
		Items:           []stock.ExitItem{{MaterialID: "mat-1", Quantity: 6}},
	})
	require.NoError(t, err)
	require.True(t, results[0].Succeeded())
	assert.Equal(t, "tp-1", results[0].Movements[0].ThirdPartyID)
	assert.Equal(t, entity.DestinationThirdParty, results[0].Movements[0].DestinationType)

	material, _ := f.materials.GetByID("mat-1")
	assert.Equal(t, int64(0), material.CurrentStock)
}
