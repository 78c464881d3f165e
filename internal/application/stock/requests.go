package stock

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// Adaptadores request → input: parsean la fecha y trasladan el payload HTTP
// al input del caso de uso. El owner y el user vienen del token, nunca del
// body.

// RegisterEntryFromRequest adapta el body HTTP y delega a RegisterEntry.
func (uc *RegisterEntryUseCase) RegisterEntryFromRequest(
	ctx context.Context,
	ownerID, userID string,
	req dto.RegisterEntryRequest,
) ([]entity.Movement, error) {
	date, err := parseFecha(req.Date)
	if err != nil {
		return nil, err
	}
	items := make([]EntryItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, EntryItem{
			MaterialID: it.MaterialID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
		})
	}
	return uc.RegisterEntry(ctx, EntryInput{
		OwnerID:      ownerID,
		UserID:       userID,
		Kind:         req.Kind,
		SupplierID:   req.SupplierID,
		EmployeeID:   req.EmployeeID,
		ThirdPartyID: req.ThirdPartyID,
		CostCenterID: req.CostCenterID,
		Date:         date,
		Notes:        req.Notes,
		Items:        items,
	})
}

// RegisterExitFromRequest adapta el body HTTP y delega a RegisterExit.
func (uc *RegisterExitUseCase) RegisterExitFromRequest(
	ctx context.Context,
	ownerID, userID string,
	req dto.RegisterExitRequest,
) ([]ExitItemResult, error) {
	date, err := parseFecha(req.Date)
	if err != nil {
		return nil, err
	}
	items := make([]ExitItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ExitItem{
			MaterialID: it.MaterialID,
			Quantity:   it.Quantity,
		})
	}
	return uc.RegisterExit(ctx, ExitInput{
		OwnerID:         ownerID,
		UserID:          userID,
		DestinationType: req.DestinationType,
		EmployeeID:      req.EmployeeID,
		ThirdPartyID:    req.ThirdPartyID,
		CostCenterID:    req.CostCenterID,
		Date:            date,
		Notes:           req.Notes,
		Items:           items,
	})
}

// parseFecha convierte "YYYY-MM-DD" a time.Time; vacío significa hoy (lo
// resuelve el caso de uso con el zero value).
func parseFecha(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(dto.FechaLayout, raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return date, nil
}
