package report

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// nameResolver memoiza las búsquedas de nombres de materiales y contrapartes
// para no golpear los catálogos una vez por fila del reporte.
type nameResolver struct {
	uc          *MovementsReportUseCase
	materials   map[string]string
	suppliers   map[string]string
	employees   map[string]string
	thirds      map[string]string
	costCenters map[string]string
}

func newNameResolver(uc *MovementsReportUseCase) *nameResolver {
	return &nameResolver{
		uc:          uc,
		materials:   make(map[string]string),
		suppliers:   make(map[string]string),
		employees:   make(map[string]string),
		thirds:      make(map[string]string),
		costCenters: make(map[string]string),
	}
}

func (r *nameResolver) material(id string) (string, error) {
	if name, ok := r.materials[id]; ok {
		return name, nil
	}
	material, err := r.uc.materialRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	name := ""
	if material != nil {
		name = material.Name
	}
	r.materials[id] = name
	return name, nil
}

// counterparty resuelve el nombre del origen (entradas) o destino (salidas).
func (r *nameResolver) counterparty(m *entity.Movement) (string, error) {
	switch {
	case m.SupplierID != "":
		if name, ok := r.suppliers[m.SupplierID]; ok {
			return name, nil
		}
		supplier, err := r.uc.supplierRepo.GetByID(m.SupplierID)
		if err != nil {
			return "", err
		}
		name := ""
		if supplier != nil {
			name = supplier.Name
		}
		r.suppliers[m.SupplierID] = name
		return name, nil
	case m.EmployeeID != "":
		if name, ok := r.employees[m.EmployeeID]; ok {
			return name, nil
		}
		employee, err := r.uc.employeeRepo.GetByID(m.EmployeeID)
		if err != nil {
			return "", err
		}
		name := ""
		if employee != nil {
			name = employee.Name
		}
		r.employees[m.EmployeeID] = name
		return name, nil
	case m.ThirdPartyID != "":
		if name, ok := r.thirds[m.ThirdPartyID]; ok {
			return name, nil
		}
		thirdParty, err := r.uc.thirdPartyRepo.GetByID(m.ThirdPartyID)
		if err != nil {
			return "", err
		}
		name := ""
		if thirdParty != nil {
			name = thirdParty.Name
		}
		r.thirds[m.ThirdPartyID] = name
		return name, nil
	}
	return "", nil
}

func (r *nameResolver) costCenter(id string) (string, error) {
	if code, ok := r.costCenters[id]; ok {
		return code, nil
	}
	costCenter, err := r.uc.costCenterRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	code := ""
	if costCenter != nil {
		code = costCenter.Code
	}
	r.costCenters[id] = code
	return code, nil
}
