package entity

import "time"

// Category representa una categoría de materiales.
type Category struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
