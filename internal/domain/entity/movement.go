package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos (kind) de movimiento del libro de almacén. El signo sobre el stock
// se deriva únicamente del kind: toda entrada suma, la salida resta.
const (
	KindSupplierEntry    = "supplier_entry"     // compra a proveedor
	KindEmployeeReturn   = "employee_return"    // devolución de funcionario
	KindThirdPartyReturn = "third_party_return" // devolución de tercero
	KindExit             = "exit"               // salida (consumo)
)

// Destinos válidos para una salida.
const (
	DestinationEmployee   = "employee"
	DestinationThirdParty = "third_party"
)

// Movement es una fila del libro de movimientos (fuente de verdad del stock).
// Quantity siempre es positiva; UnitPrice es el precio del lote de ESTA fila.
// Una salida lógica puede generar varias filas (una por lote FIFO consumido):
// todas comparten el mismo TransactionID.
type Movement struct {
	ID            string
	TransactionID string
	OwnerID       string
	MaterialID    string
	Kind          string
	Quantity      int64
	UnitPrice     decimal.Decimal
	Date          time.Time // fecha de negocio, distinta de CreatedAt

	// Origen (entradas) o destino (salidas); exactamente uno según Kind.
	SupplierID      string // solo KindSupplierEntry
	EmployeeID      string // KindEmployeeReturn o salida con destino employee
	ThirdPartyID    string // KindThirdPartyReturn o salida con destino third_party
	DestinationType string // employee | third_party; solo KindExit

	CostCenterID string
	Notes        string
	CreatedAt    time.Time
	CreatedBy    string
}

// IsEntry indica si el movimiento suma stock (entrada de proveedor o devolución).
func (m *Movement) IsEntry() bool {
	return m.Kind == KindSupplierEntry || m.Kind == KindEmployeeReturn || m.Kind == KindThirdPartyReturn
}

// IsReturn indica si el movimiento es una devolución (funcionario o tercero).
func (m *Movement) IsReturn() bool {
	return m.Kind == KindEmployeeReturn || m.Kind == KindThirdPartyReturn
}

// StockEffect devuelve +1 si el movimiento suma stock y -1 si resta.
func (m *Movement) StockEffect() int64 {
	if m.IsEntry() {
		return 1
	}
	return -1
}

// TotalValue devuelve Quantity * UnitPrice (valor de la fila).
func (m *Movement) TotalValue() decimal.Decimal {
	return m.UnitPrice.Mul(decimal.NewFromInt(m.Quantity))
}
