package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD para materiales. CurrentStock y UnitPrice
// se manejan vía movimientos.
type MaterialUseCase struct {
	repo         repository.MaterialRepository
	categoryRepo repository.CategoryRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository, categoryRepo repository.CategoryRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un nuevo material. El stock inicia en 0.
func (uc *MaterialUseCase) Create(ownerID string, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" || in.Unit == "" || in.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByOwnerAndName(ownerID, in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.OwnerID != ownerID {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	material := &entity.Material{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Unit:         in.Unit,
		CurrentStock: 0,
		MinimumStock: in.MinimumStock,
		UnitPrice:    decimal.Zero,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByID obtiene un material por ID dentro del scope del caller.
func (uc *MaterialUseCase) GetByID(id, ownerScope string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil || (ownerScope != "" && material.OwnerID != ownerScope) {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(material), nil
}

// Update actualiza un material. No permite modificar CurrentStock ni
// UnitPrice (se manejan vía movimientos).
func (uc *MaterialUseCase) Update(id, ownerScope string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil || (ownerScope != "" && material.OwnerID != ownerScope) {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name != material.Name {
		existing, _ := uc.repo.GetByOwnerAndName(material.OwnerID, *in.Name)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		material.Name = *in.Name
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			category, err := uc.categoryRepo.GetByID(*in.CategoryID)
			if err != nil {
				return nil, err
			}
			if category == nil || category.OwnerID != material.OwnerID {
				return nil, domain.ErrNotFound
			}
		}
		material.CategoryID = *in.CategoryID
	}
	if in.Unit != nil {
		material.Unit = *in.Unit
	}
	if in.MinimumStock != nil {
		if *in.MinimumStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		material.MinimumStock = *in.MinimumStock
	}
	if in.Status != nil {
		material.Status = *in.Status
	}
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// List lista materiales del tenant con paginación.
func (uc *MaterialUseCase) List(ownerID string, limit, offset int) (*dto.MaterialListResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListBelowMinimum lista los materiales cuyo stock cacheado está por debajo
// del mínimo configurado.
func (uc *MaterialUseCase) ListBelowMinimum(ownerID string) ([]dto.MaterialResponse, error) {
	list, err := uc.repo.ListBelowMinimum(ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaterialResponse(m))
	}
	return items, nil
}

// Delete elimina un material dentro del scope del caller.
func (uc *MaterialUseCase) Delete(id, ownerScope string) error {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil || (ownerScope != "" && material.OwnerID != ownerScope) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		Unit:         m.Unit,
		CurrentStock: m.CurrentStock,
		MinimumStock: m.MinimumStock,
		UnitPrice:    m.UnitPrice,
		BelowMinimum: m.BelowMinimum(),
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
