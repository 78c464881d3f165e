package dto

import "time"

// DTOs de las entidades de referencia: CRUD plano con scope de tenant.

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateCategoryRequest body para PUT /api/categories/:id. Campos nil no se tocan.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id. Campos nil no se tocan.
type UpdateSupplierRequest struct {
	Name   *string `json:"name,omitempty"`
	TaxID  *string `json:"tax_id,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty"`
	Status *string `json:"status,omitempty"`
}

// CreateEmployeeRequest body para POST /api/employees.
type CreateEmployeeRequest struct {
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Position     string `json:"position,omitempty"`
}

// EmployeeResponse funcionario en respuestas.
type EmployeeResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	Registration string    `json:"registration"`
	Position     string    `json:"position,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateEmployeeRequest body para PUT /api/employees/:id. Campos nil no se tocan.
type UpdateEmployeeRequest struct {
	Name         *string `json:"name,omitempty"`
	Registration *string `json:"registration,omitempty"`
	Position     *string `json:"position,omitempty"`
	Status       *string `json:"status,omitempty"`
}

// CreateThirdPartyRequest body para POST /api/third-parties.
type CreateThirdPartyRequest struct {
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ThirdPartyResponse tercero en respuestas.
type ThirdPartyResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Document  string    `json:"document,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateThirdPartyRequest body para PUT /api/third-parties/:id. Campos nil no se tocan.
type UpdateThirdPartyRequest struct {
	Name     *string `json:"name,omitempty"`
	Document *string `json:"document,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// CreateCostCenterRequest body para POST /api/cost-centers. Code es único
// por empresa.
type CreateCostCenterRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateCostCenterRequest body para PUT /api/cost-centers/:id. Campos nil no se tocan.
type UpdateCostCenterRequest struct {
	Code        *string `json:"code,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// CostCenterResponse centro de costo en respuestas.
type CostCenterResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
