package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/stock"
)

const testMaterialID = "mat-001"

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func entry(date time.Time, qty int64, price string) entity.Movement {
	return entity.Movement{
		MaterialID: testMaterialID,
		Kind:       entity.KindSupplierEntry,
		Quantity:   qty,
		UnitPrice:  decimal.RequireFromString(price),
		Date:       date,
		SupplierID: "sup-001",
		CreatedAt:  date,
	}
}

func exit(date time.Time, qty int64, price string) entity.Movement {
	return entity.Movement{
		MaterialID:      testMaterialID,
		Kind:            entity.KindExit,
		Quantity:        qty,
		UnitPrice:       decimal.RequireFromString(price),
		Date:            date,
		DestinationType: entity.DestinationEmployee,
		EmployeeID:      "emp-001",
		CreatedAt:       date,
	}
}

func TestResolveLots_SinMovimientos(t *testing.T) {
	lots := stock.ResolveLots(nil)
	assert.Empty(t, lots, "sin movimientos no debe haber lotes")
}

func TestResolveLots_AgrupaPorPrecioConservandoFechaMasAntigua(t *testing.T) {
	movs := []entity.Movement{
		entry(day(5), 4, "10"),
		entry(day(1), 6, "10"), // mismo precio, fecha anterior
		entry(day(3), 5, "12"),
	}
	lots := stock.ResolveLots(movs)

	require.Len(t, lots, 2, "entradas al mismo precio deben fundirse en un lote")
	assert.Equal(t, int64(10), lots[0].TotalEntered)
	assert.True(t, lots[0].UnitPrice.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, day(1), lots[0].EntryDate, "el lote conserva la fecha de la entrada más antigua")
	assert.True(t, lots[1].UnitPrice.Equal(decimal.NewFromInt(12)))
}

func TestResolveLots_ConsumeDelLoteMasAntiguoPrimero(t *testing.T) {
	movs := []entity.Movement{
		entry(day(1), 5, "10"),
		entry(day(2), 5, "12"),
		exit(day(10), 7, "10"),
	}
	lots := stock.ResolveLots(movs)

	require.Len(t, lots, 1, "el lote más antiguo debe agotarse antes de tocar el siguiente")
	assert.True(t, lots[0].UnitPrice.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, int64(3), lots[0].Available)
}

func TestResolveLots_SumaDisponibleIgualAlStockCalculado(t *testing.T) {
	movs := []entity.Movement{
		entry(day(1), 10, "5"),
		entry(day(5), 10, "7"),
		exit(day(10), 12, "5"),
		entry(day(12), 3, "5.5"),
	}
	lots := stock.ResolveLots(movs)

	var available int64
	for _, lot := range lots {
		available += lot.Available
	}
	assert.Equal(t, stock.ComputeStock(movs), available,
		"la suma de disponibles de los lotes debe espejar el recálculo de stock")
}

func TestResolveLots_LibroSobregiradoQuedaEnCero(t *testing.T) {
	// Más salidas que entradas: no debería pasar con la validación de salida,
	// pero el resolutor trunca en cero en vez de ir a negativo.
	movs := []entity.Movement{
		entry(day(1), 5, "10"),
		exit(day(2), 9, "10"),
	}
	lots := stock.ResolveLots(movs)
	assert.Empty(t, lots, "un libro sobregirado no debe producir lotes negativos")
}

func TestResolveLots_DevolucionesCuentanComoEntradas(t *testing.T) {
	ret := entity.Movement{
		MaterialID: testMaterialID,
		Kind:       entity.KindEmployeeReturn,
		Quantity:   2,
		UnitPrice:  decimal.NewFromInt(10),
		Date:       day(6),
		EmployeeID: "emp-001",
		CreatedAt:  day(6),
	}
	movs := []entity.Movement{
		entry(day(1), 5, "10"),
		exit(day(3), 5, "10"),
		ret,
	}
	lots := stock.ResolveLots(movs)

	require.Len(t, lots, 1)
	assert.Equal(t, int64(2), lots[0].Available, "la devolución repone disponibilidad en el lote")
}

func TestPlanExit_DosLotesDosLineas(t *testing.T) {
	lots := stock.ResolveLots([]entity.Movement{
		entry(day(1), 5, "10"),
		entry(day(2), 5, "12"),
	})

	plan, err := stock.PlanExit(testMaterialID, lots, 7)
	require.NoError(t, err)

	require.Len(t, plan, 2, "una salida de 7 sobre lotes 5+5 debe fragmentarse en dos líneas")
	assert.Equal(t, int64(5), plan[0].Quantity)
	assert.True(t, plan[0].Lot.UnitPrice.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, int64(2), plan[1].Quantity)
	assert.True(t, plan[1].Lot.UnitPrice.Equal(decimal.NewFromInt(12)))
}

func TestPlanExit_UnSoloLoteCubreTodo(t *testing.T) {
	lots := stock.ResolveLots([]entity.Movement{
		entry(day(1), 10, "10"),
		entry(day(2), 5, "12"),
	})

	plan, err := stock.PlanExit(testMaterialID, lots, 4)
	require.NoError(t, err)

	require.Len(t, plan, 1, "si el lote más antiguo alcanza, no se toca el siguiente")
	assert.Equal(t, int64(4), plan[0].Quantity)
	assert.True(t, plan[0].Lot.UnitPrice.Equal(decimal.NewFromInt(10)))
}

func TestPlanExit_StockInsuficienteReportaFaltante(t *testing.T) {
	lots := stock.ResolveLots([]entity.Movement{
		entry(day(1), 5, "10"),
	})

	plan, err := stock.PlanExit(testMaterialID, lots, 8)

	require.Error(t, err)
	assert.Nil(t, plan, "no debe haber plan parcial cuando el stock no alcanza")
	require.True(t, domain.IsInsufficientStock(err))
	var insufficientErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, testMaterialID, insufficientErr.MaterialID)
	assert.Equal(t, int64(5), insufficientErr.Available)
	assert.Equal(t, int64(8), insufficientErr.Requested)
}

func TestComputeStock_EntradasSumanSalidasRestan(t *testing.T) {
	movs := []entity.Movement{
		entry(day(1), 10, "5"),
		exit(day(2), 4, "5"),
		{Kind: entity.KindThirdPartyReturn, Quantity: 1, Date: day(3)},
	}
	assert.Equal(t, int64(7), stock.ComputeStock(movs))
}

func TestComputeStock_TruncaEnCero(t *testing.T) {
	movs := []entity.Movement{
		entry(day(1), 3, "5"),
		exit(day(2), 10, "5"),
	}
	assert.Equal(t, int64(0), stock.ComputeStock(movs), "el stock recalculado nunca es negativo")
}

// Escenario completo: entrada 10 @ $5, entrada 10 @ $7, salida de 12.
// El plan debe ser 10 @ $5 + 2 @ $7; el stock resultante 8 y el lote
// remanente 8 unidades @ $7.
func TestEscenario_SalidaDe12SobreDosLotes(t *testing.T) {
	ledger := []entity.Movement{
		entry(day(1), 10, "5"),
		entry(day(5), 10, "7"),
	}

	plan, err := stock.PlanExit(testMaterialID, stock.ResolveLots(ledger), 12)
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, int64(10), plan[0].Quantity)
	assert.True(t, plan[0].Lot.UnitPrice.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, int64(2), plan[1].Quantity)
	assert.True(t, plan[1].Lot.UnitPrice.Equal(decimal.NewFromInt(7)))

	// Persistir la salida como una fila por lote consumido.
	for _, line := range plan {
		ledger = append(ledger, exit(day(10), line.Quantity, line.Lot.UnitPrice.String()))
	}

	assert.Equal(t, int64(8), stock.ComputeStock(ledger))
	lots := stock.ResolveLots(ledger)
	require.Len(t, lots, 1)
	assert.True(t, lots[0].UnitPrice.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, int64(8), lots[0].Available)
}
