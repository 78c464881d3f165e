package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ThirdPartyUseCase casos de uso CRUD para terceros.
type ThirdPartyUseCase struct {
	repo repository.ThirdPartyRepository
}

// NewThirdPartyUseCase construye el caso de uso.
func NewThirdPartyUseCase(repo repository.ThirdPartyRepository) *ThirdPartyUseCase {
	return &ThirdPartyUseCase{repo: repo}
}

// Create crea un nuevo tercero.
func (uc *ThirdPartyUseCase) Create(ownerID string, in dto.CreateThirdPartyRequest) (*dto.ThirdPartyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	thirdParty := &entity.ThirdParty{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		Document:  in.Document,
		Phone:     in.Phone,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(thirdParty); err != nil {
		return nil, err
	}
	return toThirdPartyResponse(thirdParty), nil
}

// GetByID obtiene un tercero por ID dentro del scope del caller.
func (uc *ThirdPartyUseCase) GetByID(id, ownerScope string) (*dto.ThirdPartyResponse, error) {
	thirdParty, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if thirdParty == nil || (ownerScope != "" && thirdParty.OwnerID != ownerScope) {
		return nil, domain.ErrNotFound
	}
	return toThirdPartyResponse(thirdParty), nil
}

// Update actualiza un tercero dentro del scope del caller.
func (uc *ThirdPartyUseCase) Update(id, ownerScope string, in dto.UpdateThirdPartyRequest) (*dto.ThirdPartyResponse, error) {
	thirdParty, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if thirdParty == nil || (ownerScope != "" && thirdParty.OwnerID != ownerScope) {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		thirdParty.Name = *in.Name
	}
	if in.Document != nil {
		thirdParty.Document = *in.Document
	}
	if in.Phone != nil {
		thirdParty.Phone = *in.Phone
	}
	if in.Status != nil {
		thirdParty.Status = *in.Status
	}
	thirdParty.UpdatedAt = time.Now()
	if err := uc.repo.Update(thirdParty); err != nil {
		return nil, err
	}
	return toThirdPartyResponse(thirdParty), nil
}

// List lista terceros del tenant con paginación.
func (uc *ThirdPartyUseCase) List(ownerID string, limit, offset int) ([]dto.ThirdPartyResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ThirdPartyResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toThirdPartyResponse(t))
	}
	return items, nil
}

// Delete elimina un tercero dentro del scope del caller.
func (uc *ThirdPartyUseCase) Delete(id, ownerScope string) error {
	thirdParty, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if thirdParty == nil || (ownerScope != "" && thirdParty.OwnerID != ownerScope) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toThirdPartyResponse(t *entity.ThirdParty) *dto.ThirdPartyResponse {
	if t == nil {
		return nil
	}
	return &dto.ThirdPartyResponse{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		Name:      t.Name,
		Document:  t.Document,
		Phone:     t.Phone,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
