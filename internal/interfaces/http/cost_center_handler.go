package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
)

// CostCenterHandler maneja el CRUD de centros de costo (protegido).
type CostCenterHandler struct {
	uc *usecase.CostCenterUseCase
}

// NewCostCenterHandler construye el handler de centros de costo.
func NewCostCenterHandler(uc *usecase.CostCenterUseCase) *CostCenterHandler {
	return &CostCenterHandler{uc: uc}
}

// Create godoc
// @Summary      Crear centro de costo
// @Tags         cost-centers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCostCenterRequest  true  "code, name; code único por empresa"
// @Success      201   {object}  dto.CostCenterResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cost-centers [post]
func (h *CostCenterHandler) Create(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateCostCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(ownerID, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener centro de costo por ID
// @Tags         cost-centers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del centro de costo"
// @Success      200  {object}  dto.CostCenterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cost-centers/{id} [get]
func (h *CostCenterHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), ScopeOwner(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar centros de costo del tenant
// @Tags         cost-centers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.CostCenterResponse
// @Router       /api/cost-centers [get]
func (h *CostCenterHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(ScopeOwner(c), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar centro de costo
// @Tags         cost-centers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del centro de costo"
// @Param        body  body  dto.UpdateCostCenterRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.CostCenterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cost-centers/{id} [put]
func (h *CostCenterHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCostCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), ScopeOwner(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar centro de costo
// @Tags         cost-centers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del centro de costo"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cost-centers/{id} [delete]
func (h *CostCenterHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), ScopeOwner(c)); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "centro de costo eliminado"})
}
