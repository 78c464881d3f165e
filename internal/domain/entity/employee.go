package entity

import "time"

// Employee representa un funcionario (destino de salidas y origen de devoluciones).
type Employee struct {
	ID           string
	OwnerID      string
	Name         string
	Registration string // matrícula, única por empresa
	Position     string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
