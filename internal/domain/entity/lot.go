package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot es un lote de precio homogéneo derivado del libro: agrupa las entradas
// de un material al mismo precio unitario y registra cuánto queda sin consumir
// por salidas anteriores (en orden cronológico). Nunca se persiste; se
// recalcula bajo demanda a partir de los movimientos.
type Lot struct {
	MaterialID   string
	UnitPrice    decimal.Decimal
	EntryDate    time.Time // fecha de la entrada más antigua a este precio
	SupplierID   string
	TotalEntered int64 // suma de cantidades entradas a este precio
	Available    int64 // TotalEntered menos lo ya consumido (>= 0)
}
