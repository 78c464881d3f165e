package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryItemRequest un material dentro de un payload de entrada.
type EntryItemRequest struct {
	MaterialID string          `json:"material_id"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// RegisterEntryRequest body para POST /api/movements/entries.
// Kind: supplier_entry | employee_return | third_party_return; el origen
// correspondiente (supplier_id, employee_id o third_party_id) es obligatorio.
type RegisterEntryRequest struct {
	Kind         string             `json:"kind"`
	SupplierID   string             `json:"supplier_id,omitempty"`
	EmployeeID   string             `json:"employee_id,omitempty"`
	ThirdPartyID string             `json:"third_party_id,omitempty"`
	CostCenterID string             `json:"cost_center_id,omitempty"`
	Date         string             `json:"date,omitempty"` // YYYY-MM-DD; vacío = hoy
	Notes        string             `json:"notes,omitempty"`
	Items        []EntryItemRequest `json:"items"`
}

// ExitItemRequest un material dentro de un payload de salida. Sin precio:
// lo fijan los lotes FIFO.
type ExitItemRequest struct {
	MaterialID string `json:"material_id"`
	Quantity   int64  `json:"quantity"`
}

// RegisterExitRequest body para POST /api/movements/exits.
// DestinationType: employee | third_party.
type RegisterExitRequest struct {
	DestinationType string            `json:"destination_type"`
	EmployeeID      string            `json:"employee_id,omitempty"`
	ThirdPartyID    string            `json:"third_party_id,omitempty"`
	CostCenterID    string            `json:"cost_center_id,omitempty"`
	Date            string            `json:"date,omitempty"` // YYYY-MM-DD; vacío = hoy
	Notes           string            `json:"notes,omitempty"`
	Items           []ExitItemRequest `json:"items"`
}

// MovementResponse una fila del libro en respuestas.
type MovementResponse struct {
	ID              string          `json:"id"`
	TransactionID   string          `json:"transaction_id"`
	MaterialID      string          `json:"material_id"`
	Kind            string          `json:"kind"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalValue      decimal.Decimal `json:"total_value"`
	Date            time.Time       `json:"date"`
	SupplierID      string          `json:"supplier_id,omitempty"`
	EmployeeID      string          `json:"employee_id,omitempty"`
	ThirdPartyID    string          `json:"third_party_id,omitempty"`
	DestinationType string          `json:"destination_type,omitempty"`
	CostCenterID    string          `json:"cost_center_id,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// ExitItemResultResponse resultado por ítem de una salida: filas creadas o
// el motivo del rechazo (con el faltante cuando aplica).
type ExitItemResultResponse struct {
	MaterialID string             `json:"material_id"`
	Succeeded  bool               `json:"succeeded"`
	Movements  []MovementResponse `json:"movements,omitempty"`
	Error      string             `json:"error,omitempty"`
	Available  int64              `json:"available,omitempty"`
	Requested  int64              `json:"requested,omitempty"`
}

// LotResponse un lote abierto de un material.
type LotResponse struct {
	UnitPrice    decimal.Decimal `json:"unit_price"`
	EntryDate    time.Time       `json:"entry_date"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	TotalEntered int64           `json:"total_entered"`
	Available    int64           `json:"available"`
}

// RecalculateResponse resultado de un recálculo de stock.
type RecalculateResponse struct {
	MaterialID   string `json:"material_id"`
	CurrentStock int64  `json:"current_stock"`
}
