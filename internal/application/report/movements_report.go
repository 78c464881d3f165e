// Package report contiene los casos de uso de reportes sobre el libro de
// movimientos: reporte general y reporte por centro de costo. Los reportes
// leen el libro, nunca el cache de stock.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	domstock "github.com/tu-usuario/almacen-pro/internal/domain/stock"
)

// Filter filtros del reporte general de movimientos.
type Filter struct {
	OwnerScope   string // vacío = todos los tenants (solo super_admin)
	MaterialID   string
	CategoryID   string
	CostCenterID string
	Kind         string
	From         *time.Time
	To           *time.Time
}

// Row una fila clasificada del reporte.
type Row struct {
	MovementID     string          `json:"movement_id"`
	TransactionID  string          `json:"transaction_id"`
	Date           time.Time       `json:"date"`
	MaterialID     string          `json:"material_id"`
	MaterialName   string          `json:"material_name"`
	DisplayType    string          `json:"display_type"` // Entrada | Saída | Devolução
	Counterparty   string          `json:"counterparty"` // proveedor, funcionario o tercero
	CostCenterCode string          `json:"cost_center_code,omitempty"`
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalValue     decimal.Decimal `json:"total_value"`
	Notes          string          `json:"notes,omitempty"`
}

// Totals agregados del reporte general. GrandTotal = entradas − salidas +
// devoluciones; las devoluciones nunca engordan el total de compras.
type Totals struct {
	EntriesQuantity int64           `json:"entries_quantity"`
	ExitsQuantity   int64           `json:"exits_quantity"`
	ReturnsQuantity int64           `json:"returns_quantity"`
	EntriesValue    decimal.Decimal `json:"entries_value"`
	ExitsValue      decimal.Decimal `json:"exits_value"`
	ReturnsValue    decimal.Decimal `json:"returns_value"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
}

// GeneralReport salida del reporte general.
type GeneralReport struct {
	Rows   []Row  `json:"rows"`
	Totals Totals `json:"totals"`
}

// MovementsReportUseCase arma los reportes a partir del libro y de los
// catálogos de referencia (para resolver nombres).
type MovementsReportUseCase struct {
	movementRepo   repository.MovementRepository
	materialRepo   repository.MaterialRepository
	supplierRepo   repository.SupplierRepository
	employeeRepo   repository.EmployeeRepository
	thirdPartyRepo repository.ThirdPartyRepository
	costCenterRepo repository.CostCenterRepository
}

// NewMovementsReportUseCase construye el caso de uso.
func NewMovementsReportUseCase(
	movementRepo repository.MovementRepository,
	materialRepo repository.MaterialRepository,
	supplierRepo repository.SupplierRepository,
	employeeRepo repository.EmployeeRepository,
	thirdPartyRepo repository.ThirdPartyRepository,
	costCenterRepo repository.CostCenterRepository,
) *MovementsReportUseCase {
	return &MovementsReportUseCase{
		movementRepo:   movementRepo,
		materialRepo:   materialRepo,
		supplierRepo:   supplierRepo,
		employeeRepo:   employeeRepo,
		thirdPartyRepo: thirdPartyRepo,
		costCenterRepo: costCenterRepo,
	}
}

// General genera el reporte general de movimientos con filas clasificadas y
// totales por bucket (entradas, salidas, devoluciones).
func (uc *MovementsReportUseCase) General(ctx context.Context, filter Filter) (*GeneralReport, error) {
	movements, err := uc.movementRepo.List(repository.MovementFilter{
		OwnerID:      filter.OwnerScope,
		MaterialID:   filter.MaterialID,
		CategoryID:   filter.CategoryID,
		CostCenterID: filter.CostCenterID,
		Kind:         filter.Kind,
		From:         filter.From,
		To:           filter.To,
	})
	if err != nil {
		return nil, err
	}

	report := &GeneralReport{Rows: make([]Row, 0, len(movements))}
	report.Totals.EntriesValue = decimal.Zero
	report.Totals.ExitsValue = decimal.Zero
	report.Totals.ReturnsValue = decimal.Zero
	names := newNameResolver(uc)

	for i := range movements {
		m := &movements[i]
		row, err := uc.buildRow(names, m)
		if err != nil {
			return nil, err
		}
		report.Rows = append(report.Rows, row)

		switch domstock.Classify(m).Bucket {
		case domstock.BucketEntries:
			report.Totals.EntriesQuantity += m.Quantity
			report.Totals.EntriesValue = report.Totals.EntriesValue.Add(row.TotalValue)
		case domstock.BucketReturns:
			report.Totals.ReturnsQuantity += m.Quantity
			report.Totals.ReturnsValue = report.Totals.ReturnsValue.Add(row.TotalValue)
		case domstock.BucketExits:
			report.Totals.ExitsQuantity += m.Quantity
			report.Totals.ExitsValue = report.Totals.ExitsValue.Add(row.TotalValue)
		}
	}
	report.Totals.GrandTotal = report.Totals.EntriesValue.
		Sub(report.Totals.ExitsValue).
		Add(report.Totals.ReturnsValue)
	return report, nil
}

// CostCenterReport salida del reporte por centro de costo.
type CostCenterReport struct {
	CostCenterID   string          `json:"cost_center_id"`
	CostCenterCode string          `json:"cost_center_code"`
	Rows           []Row           `json:"rows"`
	ConsumedValue  decimal.Decimal `json:"consumed_value"`
	ReturnedValue  decimal.Decimal `json:"returned_value"`
	NetValue       decimal.Decimal `json:"net_value"` // consumido − devuelto
}

// CostCenter genera el reporte de un centro de costo: solo salidas y
// devoluciones. Las compras a proveedor no pueden aparecer (los centros de
// costo rastrean consumo, no adquisición) y se excluyen estructuralmente
// aunque el libro tuviera una fila anómala.
func (uc *MovementsReportUseCase) CostCenter(ctx context.Context, costCenterID string, from, to *time.Time, ownerScope string) (*CostCenterReport, error) {
	costCenter, err := uc.costCenterRepo.GetByID(costCenterID)
	if err != nil {
		return nil, err
	}
	if costCenter == nil || (ownerScope != "" && costCenter.OwnerID != ownerScope) {
		return nil, domain.ErrNotFound
	}

	movements, err := uc.movementRepo.List(repository.MovementFilter{
		OwnerID:      ownerScope,
		CostCenterID: costCenterID,
		From:         from,
		To:           to,
	})
	if err != nil {
		return nil, err
	}

	report := &CostCenterReport{
		CostCenterID:   costCenter.ID,
		CostCenterCode: costCenter.Code,
		Rows:           make([]Row, 0, len(movements)),
		ConsumedValue:  decimal.Zero,
		ReturnedValue:  decimal.Zero,
	}
	names := newNameResolver(uc)

	for i := range movements {
		m := &movements[i]
		classification := domstock.Classify(m)
		if !classification.CostCenterRelevant {
			continue
		}
		row, err := uc.buildRow(names, m)
		if err != nil {
			return nil, err
		}
		report.Rows = append(report.Rows, row)
		if classification.Bucket == domstock.BucketReturns {
			report.ReturnedValue = report.ReturnedValue.Add(row.TotalValue)
		} else {
			report.ConsumedValue = report.ConsumedValue.Add(row.TotalValue)
		}
	}
	report.NetValue = report.ConsumedValue.Sub(report.ReturnedValue)
	return report, nil
}

func (uc *MovementsReportUseCase) buildRow(names *nameResolver, m *entity.Movement) (Row, error) {
	materialName, err := names.material(m.MaterialID)
	if err != nil {
		return Row{}, err
	}
	counterparty, err := names.counterparty(m)
	if err != nil {
		return Row{}, err
	}
	costCenterCode := ""
	if m.CostCenterID != "" {
		costCenterCode, err = names.costCenter(m.CostCenterID)
		if err != nil {
			return Row{}, err
		}
	}
	return Row{
		MovementID:     m.ID,
		TransactionID:  m.TransactionID,
		Date:           m.Date,
		MaterialID:     m.MaterialID,
		MaterialName:   materialName,
		DisplayType:    domstock.Classify(m).DisplayType,
		Counterparty:   counterparty,
		CostCenterCode: costCenterCode,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		TotalValue:     m.TotalValue(),
		Notes:          m.Notes,
	}, nil
}
