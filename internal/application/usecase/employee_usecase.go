package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para funcionarios.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea un nuevo funcionario. La matrícula es única por empresa.
func (uc *EmployeeUseCase) Create(ownerID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Registration == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByOwnerAndRegistration(ownerID, in.Registration)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Name:         in.Name,
		Registration: in.Registration,
		Position:     in.Position,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un funcionario por ID dentro del scope del caller.
func (uc *EmployeeUseCase) GetByID(id, ownerScope string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil || (ownerScope != "" && employee.OwnerID != ownerScope) {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Update actualiza un funcionario dentro del scope del caller.
func (uc *EmployeeUseCase) Update(id, ownerScope string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil || (ownerScope != "" && employee.OwnerID != ownerScope) {
		return nil, domain.ErrNotFound
	}
	if in.Registration != nil && *in.Registration != employee.Registration {
		if *in.Registration == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, _ := uc.repo.GetByOwnerAndRegistration(employee.OwnerID, *in.Registration)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		employee.Registration = *in.Registration
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		employee.Name = *in.Name
	}
	if in.Position != nil {
		employee.Position = *in.Position
	}
	if in.Status != nil {
		employee.Status = *in.Status
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista funcionarios del tenant con paginación.
func (uc *EmployeeUseCase) List(ownerID string, limit, offset int) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return items, nil
}

// Delete elimina un funcionario dentro del scope del caller.
func (uc *EmployeeUseCase) Delete(id, ownerScope string) error {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil || (ownerScope != "" && employee.OwnerID != ownerScope) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		Name:         e.Name,
		Registration: e.Registration,
		Position:     e.Position,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
