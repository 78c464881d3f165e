package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest body para POST /api/materials. El stock inicia en 0
// y solo lo mueven las entradas/salidas; el precio de display lo fija la
// última compra a proveedor.
type CreateMaterialRequest struct {
	CategoryID   string `json:"category_id,omitempty"`
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	MinimumStock int64  `json:"minimum_stock,omitempty"`
}

// UpdateMaterialRequest body para PUT /api/materials/:id. No permite tocar
// CurrentStock ni UnitPrice (se manejan vía movimientos).
type UpdateMaterialRequest struct {
	CategoryID   *string `json:"category_id,omitempty"`
	Name         *string `json:"name,omitempty"`
	Unit         *string `json:"unit,omitempty"`
	MinimumStock *int64  `json:"minimum_stock,omitempty"`
	Status       *string `json:"status,omitempty"`
}

// MaterialResponse material en respuestas.
type MaterialResponse struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"owner_id"`
	CategoryID   string          `json:"category_id,omitempty"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CurrentStock int64           `json:"current_stock"`
	MinimumStock int64           `json:"minimum_stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	BelowMinimum bool            `json:"below_minimum"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MaterialListResponse listado paginado de materiales.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
