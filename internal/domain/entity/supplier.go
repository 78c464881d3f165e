package entity

import "time"

// Supplier representa un proveedor (origen de entradas de compra).
type Supplier struct {
	ID        string
	OwnerID   string
	Name      string
	TaxID     string // documento fiscal, único por empresa
	Phone     string
	Email     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
