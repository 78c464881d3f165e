package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// Puertos de persistencia de las entidades de referencia (DIP). Son CRUD
// planos con scope de tenant; la única regla extra es la unicidad de la
// clave natural (código de centro de costo, matrícula, documento fiscal).

// CategoryRepository puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByOwnerAndName(ownerID, name string) (*entity.Category, error)
	Update(category *entity.Category) error
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Category, error)
	Delete(id string) error
}

// SupplierRepository puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByOwnerAndTaxID(ownerID, taxID string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}

// EmployeeRepository puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByOwnerAndRegistration(ownerID, registration string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Employee, error)
	Delete(id string) error
}

// ThirdPartyRepository puerto de persistencia para ThirdParty.
type ThirdPartyRepository interface {
	Create(thirdParty *entity.ThirdParty) error
	GetByID(id string) (*entity.ThirdParty, error)
	Update(thirdParty *entity.ThirdParty) error
	ListByOwner(ownerID string, limit, offset int) ([]*entity.ThirdParty, error)
	Delete(id string) error
}

// CostCenterRepository puerto de persistencia para CostCenter.
type CostCenterRepository interface {
	Create(costCenter *entity.CostCenter) error
	GetByID(id string) (*entity.CostCenter, error)
	GetByOwnerAndCode(ownerID, code string) (*entity.CostCenter, error)
	Update(costCenter *entity.CostCenter) error
	ListByOwner(ownerID string, limit, offset int) ([]*entity.CostCenter, error)
	Delete(id string) error
}
