package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa un material del almacén (multi-tenant vía OwnerID).
// CurrentStock es un cache derivado del libro de movimientos: nunca es fuente
// de verdad y el reconciliador lo reescribe cuando detecta deriva.
// UnitPrice es el último precio de compra a proveedor (convención de display,
// independiente del costeo FIFO por lotes).
type Material struct {
	ID           string
	OwnerID      string
	CategoryID   string
	Name         string
	Unit         string // unidad de medida: UN, KG, M, L...
	CurrentStock int64
	MinimumStock int64
	UnitPrice    decimal.Decimal
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BelowMinimum indica si el stock cacheado está por debajo del mínimo configurado.
func (m *Material) BelowMinimum() bool {
	return m.MinimumStock > 0 && m.CurrentStock < m.MinimumStock
}
