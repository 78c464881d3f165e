package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	// GetForUpdate obtiene el material y bloquea la fila (SELECT FOR UPDATE)
	// para serializar entradas/salidas concurrentes sobre el mismo material.
	GetForUpdate(id string) (*entity.Material, error)
	GetByOwnerAndName(ownerID, name string) (*entity.Material, error)
	Update(material *entity.Material) error
	// UpdateStock reescribe el cache current_stock con el valor derivado del libro.
	UpdateStock(id string, stock int64) error
	// UpdateUnitPrice actualiza el precio de display (último precio de proveedor).
	UpdateUnitPrice(id string, price decimal.Decimal) error
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Material, error)
	ListBelowMinimum(ownerID string) ([]*entity.Material, error)
	Delete(id string) error
}
