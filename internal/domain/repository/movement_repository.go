package repository

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// MovementFilter filtros para listados y reportes del libro de movimientos.
// OwnerID vacío significa sin filtro de tenant (solo super_admin llega así).
type MovementFilter struct {
	OwnerID      string
	MaterialID   string
	CategoryID   string
	CostCenterID string
	Kind         string
	From         *time.Time
	To           *time.Time
}

// MovementRepository define el puerto de persistencia para el libro de
// movimientos (DIP). El orden cronológico de ListByMaterial es un requisito
// de corrección del costeo FIFO, no una optimización.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	Delete(id string) error
	// ListByMaterial devuelve el libro completo de un material ordenado por
	// fecha de negocio ascendente y, a igual fecha, por fecha de creación.
	ListByMaterial(materialID, ownerID string) ([]entity.Movement, error)
	// List aplica los filtros de reporte, ordenado por fecha ascendente.
	List(filter MovementFilter) ([]entity.Movement, error)
}
