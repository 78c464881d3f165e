package entity

import "time"

// CostCenter representa un centro de costo para imputar consumos y devoluciones.
// Las entradas de proveedor nunca se imputan a centros de costo (son compras,
// no consumo).
type CostCenter struct {
	ID          string
	OwnerID     string
	Code        string // código único por empresa
	Name        string
	Description string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
