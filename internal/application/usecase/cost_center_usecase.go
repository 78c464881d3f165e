package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// CostCenterUseCase casos de uso CRUD para centros de costo.
type CostCenterUseCase struct {
	repo repository.CostCenterRepository
}

// NewCostCenterUseCase construye el caso de uso.
func NewCostCenterUseCase(repo repository.CostCenterRepository) *CostCenterUseCase {
	return &CostCenterUseCase{repo: repo}
}

// Create crea un nuevo centro de costo. El código es único por empresa.
func (uc *CostCenterUseCase) Create(ownerID string, in dto.CreateCostCenterRequest) (*dto.CostCenterResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByOwnerAndCode(ownerID, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	costCenter := &entity.CostCenter{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(costCenter); err != nil {
		return nil, err
	}
	return toCostCenterResponse(costCenter), nil
}

// GetByID obtiene un centro de costo por ID dentro del scope del caller.
func (uc *CostCenterUseCase) GetByID(id, ownerScope string) (*dto.CostCenterResponse, error) {
	costCenter, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if costCenter == nil || (ownerScope != "" && costCenter.OwnerID != ownerScope) {
		return nil, domain.ErrNotFound
	}
	return toCostCenterResponse(costCenter), nil
}

// Update actualiza un centro de costo dentro del scope del caller.
func (uc *CostCenterUseCase) Update(id, ownerScope string, in dto.UpdateCostCenterRequest) (*dto.CostCenterResponse, error) {
	costCenter, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if costCenter == nil || (ownerScope != "" && costCenter.OwnerID != ownerScope) {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil && *in.Code != costCenter.Code {
		if *in.Code == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, _ := uc.repo.GetByOwnerAndCode(costCenter.OwnerID, *in.Code)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		costCenter.Code = *in.Code
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		costCenter.Name = *in.Name
	}
	if in.Description != nil {
		costCenter.Description = *in.Description
	}
	if in.Status != nil {
		costCenter.Status = *in.Status
	}
	costCenter.UpdatedAt = time.Now()
	if err := uc.repo.Update(costCenter); err != nil {
		return nil, err
	}
	return toCostCenterResponse(costCenter), nil
}

// List lista centros de costo del tenant con paginación.
func (uc *CostCenterUseCase) List(ownerID string, limit, offset int) ([]dto.CostCenterResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CostCenterResponse, 0, len(list))
	for _, cc := range list {
		items = append(items, *toCostCenterResponse(cc))
	}
	return items, nil
}

// Delete elimina un centro de costo dentro del scope del caller.
func (uc *CostCenterUseCase) Delete(id, ownerScope string) error {
	costCenter, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if costCenter == nil || (ownerScope != "" && costCenter.OwnerID != ownerScope) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCostCenterResponse(cc *entity.CostCenter) *dto.CostCenterResponse {
	if cc == nil {
		return nil
	}
	return &dto.CostCenterResponse{
		ID:          cc.ID,
		OwnerID:     cc.OwnerID,
		Code:        cc.Code,
		Name:        cc.Name,
		Description: cc.Description,
		Status:      cc.Status,
		CreatedAt:   cc.CreatedAt,
		UpdatedAt:   cc.UpdatedAt,
	}
}
