package entity

import "time"

// ThirdParty representa un tercero externo (destino de salidas y origen de devoluciones).
type ThirdParty struct {
	ID        string
	OwnerID   string
	Name      string
	Document  string
	Phone     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
