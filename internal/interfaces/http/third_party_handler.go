package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
)

// ThirdPartyHandler maneja el CRUD de terceros (protegido).
type ThirdPartyHandler struct {
	uc *usecase.ThirdPartyUseCase
}

// NewThirdPartyHandler construye el handler de terceros.
func NewThirdPartyHandler(uc *usecase.ThirdPartyUseCase) *ThirdPartyHandler {
	return &ThirdPartyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tercero
// @Tags         third-parties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateThirdPartyRequest  true  "name"
// @Success      201   {object}  dto.ThirdPartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/third-parties [post]
func (h *ThirdPartyHandler) Create(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateThirdPartyRequest
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
// @Summary      Obtener tercero por ID
// @Tags         third-parties
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del tercero"
// @Success      200  {object}  dto.ThirdPartyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/third-parties/{id} [get]
func (h *ThirdPartyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), ScopeOwner(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar terceros del tenant
// @Tags         third-parties
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.ThirdPartyResponse
// @Router       /api/third-parties [get]
func (h *ThirdPartyHandler) List(c *fiber.Ctx) error {
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
// @Summary      Actualizar tercero
// @Tags         third-parties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tercero"
// @Param        body  body  dto.UpdateThirdPartyRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.ThirdPartyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/third-parties/{id} [put]
func (h *ThirdPartyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateThirdPartyRequest
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
// @Summary      Eliminar tercero
// @Tags         third-parties
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del tercero"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/third-parties/{id} [delete]
func (h *ThirdPartyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), ScopeOwner(c)); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "tercero eliminado"})
}
