package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/report"
)

// ReportHandler maneja los reportes del libro de movimientos (protegido).
type ReportHandler struct {
	uc *report.MovementsReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.MovementsReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// General godoc
// @Summary      Reporte general de movimientos
// @Description  Filas clasificadas (Entrada/Saída/Devolução) con nombres
//
//	resueltos y totales por bucket; devoluciones nunca cuentan
//	como compras.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        material_id     query  string  false  "Filtrar por material"
// @Param        category_id     query  string  false  "Filtrar por categoría"
// @Param        cost_center_id  query  string  false  "Filtrar por centro de costo"
// @Param        kind            query  string  false  "Filtrar por tipo de movimiento"
// @Param        from            query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        to              query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  report.GeneralReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) General(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
	}
	out, err := h.uc.General(c.Context(), report.Filter{
		OwnerScope:   ScopeOwner(c),
		MaterialID:   c.Query("material_id"),
		CategoryID:   c.Query("category_id"),
		CostCenterID: c.Query("cost_center_id"),
		Kind:         c.Query("kind"),
		From:         from,
		To:           to,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// CostCenter godoc
// @Summary      Reporte de consumo de un centro de costo
// @Description  Solo salidas y devoluciones: las compras a proveedor quedan
//
//	excluidas estructuralmente del reporte.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID del centro de costo"
// @Param        from  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        to    query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  report.CostCenterReport
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/cost-centers/{id} [get]
func (h *ReportHandler) CostCenter(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
	}
	out, err := h.uc.CostCenter(c.Context(), c.Params("id"), from, to, ScopeOwner(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// parseDateRange lee los query params from/to en formato YYYY-MM-DD.
func parseDateRange(c *fiber.Ctx) (from, to *time.Time, ok bool) {
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(dto.FechaLayout, raw)
		if err != nil {
			return nil, nil, false
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(dto.FechaLayout, raw)
		if err != nil {
			return nil, nil, false
		}
		to = &t
	}
	return from, to, true
}
