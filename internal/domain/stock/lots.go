// Package stock contiene la lógica pura de stock sobre el libro de
// movimientos: resolución de lotes por precio, plan de consumo FIFO y
// recálculo del stock (servicios de dominio, sin I/O).
package stock

import (
	"sort"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ResolveLots deriva los lotes abiertos de un material a partir de sus
// movimientos. Agrupa las entradas por precio unitario (sumando cantidades y
// conservando la fecha más antigua como fecha del lote), resta el total de
// salidas recorriendo los lotes en orden cronológico ascendente y devuelve
// solo los lotes con cantidad disponible. La suma de Available de los lotes
// devueltos coincide con el stock real mientras el libro sea consistente.
func ResolveLots(movements []entity.Movement) []entity.Lot {
	entries := make([]entity.Movement, 0, len(movements))
	var exited int64
	for _, m := range movements {
		if m.IsEntry() {
			entries = append(entries, m)
		} else {
			exited += m.Quantity
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	// Agrupar por precio unitario conservando la entrada más antigua.
	var lots []*entity.Lot
	byPrice := make(map[string]*entity.Lot)
	for _, e := range entries {
		key := e.UnitPrice.String()
		lot, ok := byPrice[key]
		if !ok {
			lot = &entity.Lot{
				MaterialID: e.MaterialID,
				UnitPrice:  e.UnitPrice,
				EntryDate:  e.Date,
				SupplierID: e.SupplierID,
			}
			byPrice[key] = lot
			lots = append(lots, lot)
		}
		lot.TotalEntered += e.Quantity
	}

	// Consumir las salidas acumuladas lote a lote, del más antiguo al más
	// nuevo. Si el libro tiene más salidas que entradas, los lotes quedan en
	// cero en vez de en negativo.
	result := make([]entity.Lot, 0, len(lots))
	for _, lot := range lots {
		consumed := min64(exited, lot.TotalEntered)
		exited -= consumed
		lot.Available = lot.TotalEntered - consumed
		if lot.Available > 0 {
			result = append(result, *lot)
		}
	}
	return result
}

// Consumption es una línea del plan de salida FIFO: cuánta cantidad se toma
// de qué lote (y por lo tanto a qué precio se registra esa fila del libro).
type Consumption struct {
	Lot      entity.Lot
	Quantity int64
}

// PlanExit decompone una salida de `requested` unidades contra los lotes
// abiertos, del más antiguo al más nuevo. Si los lotes no cubren la cantidad
// pedida falla con InsufficientStockError sin plan parcial.
func PlanExit(materialID string, lots []entity.Lot, requested int64) ([]Consumption, error) {
	var available int64
	for _, lot := range lots {
		available += lot.Available
	}
	if requested > available {
		return nil, &domain.InsufficientStockError{
			MaterialID: materialID,
			Available:  available,
			Requested:  requested,
		}
	}

	var plan []Consumption
	remaining := requested
	for _, lot := range lots {
		if remaining == 0 {
			break
		}
		take := min64(remaining, lot.Available)
		plan = append(plan, Consumption{Lot: lot, Quantity: take})
		remaining -= take
	}
	return plan, nil
}

// ComputeStock recalcula el stock autoritativo de un material plegando el
// libro completo: las entradas (compra y devoluciones) suman, las salidas
// restan. El resultado se trunca en cero.
func ComputeStock(movements []entity.Movement) int64 {
	var total int64
	for _, m := range movements {
		total += m.StockEffect() * m.Quantity
	}
	if total < 0 {
		total = 0
	}
	return total
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
