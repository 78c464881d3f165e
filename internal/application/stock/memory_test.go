package stock_test

// Fakes en memoria para los tests de casos de uso: repositorios sobre mapas
// y un TxRunner con snapshot/rollback para poder verificar atomicidad sin
// levantar PostgreSQL.

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

type memoryStore struct {
	movements map[string]entity.Movement
	materials map[string]entity.Material
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		movements: make(map[string]entity.Movement),
		materials: make(map[string]entity.Material),
	}
}

func (s *memoryStore) snapshot() *memoryStore {
	clone := newMemoryStore()
	for k, v := range s.movements {
		clone.movements[k] = v
	}
	for k, v := range s.materials {
		clone.materials[k] = v
	}
	return clone
}

func (s *memoryStore) restore(from *memoryStore) {
	s.movements = from.movements
	s.materials = from.materials
}

// ── MovementRepository ────────────────────────────────────────────────────────

type memoryMovementRepo struct{ store *memoryStore }

func (r *memoryMovementRepo) Create(m *entity.Movement) error {
	r.store.movements[m.ID] = *m
	return nil
}

func (r *memoryMovementRepo) GetByID(id string) (*entity.Movement, error) {
	m, ok := r.store.movements[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *memoryMovementRepo) Delete(id string) error {
	delete(r.store.movements, id)
	return nil
}

func (r *memoryMovementRepo) ListByMaterial(materialID, ownerID string) ([]entity.Movement, error) {
	var list []entity.Movement
	for _, m := range r.store.movements {
		if m.MaterialID != materialID {
			continue
		}
		if ownerID != "" && m.OwnerID != ownerID {
			continue
		}
		list = append(list, m)
	}
	sortChronological(list)
	return list, nil
}

func (r *memoryMovementRepo) List(f repository.MovementFilter) ([]entity.Movement, error) {
	var list []entity.Movement
	for _, m := range r.store.movements {
		if f.OwnerID != "" && m.OwnerID != f.OwnerID {
			continue
		}
		if f.MaterialID != "" && m.MaterialID != f.MaterialID {
			continue
		}
		if f.CostCenterID != "" && m.CostCenterID != f.CostCenterID {
			continue
		}
		if f.CategoryID != "" {
			material, ok := r.store.materials[m.MaterialID]
			if !ok || material.CategoryID != f.CategoryID {
				continue
			}
		}
		if f.Kind != "" && m.Kind != f.Kind {
			continue
		}
		if f.From != nil && m.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && m.Date.After(*f.To) {
			continue
		}
		list = append(list, m)
	}
	sortChronological(list)
	return list, nil
}

func sortChronological(list []entity.Movement) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}

// ── MaterialRepository ────────────────────────────────────────────────────────

type memoryMaterialRepo struct{ store *memoryStore }

func (r *memoryMaterialRepo) Create(m *entity.Material) error {
	r.store.materials[m.ID] = *m
	return nil
}

func (r *memoryMaterialRepo) GetByID(id string) (*entity.Material, error) {
	m, ok := r.store.materials[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *memoryMaterialRepo) GetForUpdate(id string) (*entity.Material, error) {
	return r.GetByID(id)
}

func (r *memoryMaterialRepo) GetByOwnerAndName(ownerID, name string) (*entity.Material, error) {
	for _, m := range r.store.materials {
		if m.OwnerID == ownerID && m.Name == name {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *memoryMaterialRepo) Update(m *entity.Material) error {
	r.store.materials[m.ID] = *m
	return nil
}

func (r *memoryMaterialRepo) UpdateStock(id string, stock int64) error {
	m := r.store.materials[id]
	m.CurrentStock = stock
	r.store.materials[id] = m
	return nil
}

func (r *memoryMaterialRepo) UpdateUnitPrice(id string, price decimal.Decimal) error {
	m := r.store.materials[id]
	m.UnitPrice = price
	r.store.materials[id] = m
	return nil
}

func (r *memoryMaterialRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Material, error) {
	var ids []string
	for id, m := range r.store.materials {
		if ownerID == "" || m.OwnerID == ownerID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	var list []*entity.Material
	for i := offset; i < len(ids) && len(list) < limit; i++ {
		m := r.store.materials[ids[i]]
		list = append(list, &m)
	}
	return list, nil
}

func (r *memoryMaterialRepo) ListBelowMinimum(ownerID string) ([]*entity.Material, error) {
	var list []*entity.Material
	for _, m := range r.store.materials {
		if (ownerID == "" || m.OwnerID == ownerID) && m.BelowMinimum() {
			copy := m
			list = append(list, &copy)
		}
	}
	return list, nil
}

func (r *memoryMaterialRepo) Delete(id string) error {
	delete(r.store.materials, id)
	return nil
}

// ── TxRunner con rollback por snapshot ────────────────────────────────────────

type memoryTxRunner struct{ store *memoryStore }

func (t *memoryTxRunner) Run(ctx context.Context, fn func(
	movementRepo repository.MovementRepository,
	materialRepo repository.MaterialRepository,
) error) error {
	before := t.store.snapshot()
	err := fn(&memoryMovementRepo{store: t.store}, &memoryMaterialRepo{store: t.store})
	if err != nil {
		t.store.restore(before)
	}
	return err
}

// ── Repositorios de referencia (solo GetByID se usa en validaciones) ──────────

type memorySupplierRepo struct{ byID map[string]*entity.Supplier }

func (r *memorySupplierRepo) Create(s *entity.Supplier) error { r.byID[s.ID] = s; return nil }
func (r *memorySupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.byID[id], nil
}
func (r *memorySupplierRepo) GetByOwnerAndTaxID(ownerID, taxID string) (*entity.Supplier, error) {
	return nil, nil
}
func (r *memorySupplierRepo) Update(*entity.Supplier) error { return nil }
func (r *memorySupplierRepo) ListByOwner(string, int, int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *memorySupplierRepo) Delete(string) error { return nil }

type memoryEmployeeRepo struct{ byID map[string]*entity.Employee }

func (r *memoryEmployeeRepo) Create(e *entity.Employee) error { r.byID[e.ID] = e; return nil }
func (r *memoryEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.byID[id], nil
}
func (r *memoryEmployeeRepo) GetByOwnerAndRegistration(ownerID, registration string) (*entity.Employee, error) {
	return nil, nil
}
func (r *memoryEmployeeRepo) Update(*entity.Employee) error { return nil }
func (r *memoryEmployeeRepo) ListByOwner(string, int, int) ([]*entity.Employee, error) {
	return nil, nil
}
func (r *memoryEmployeeRepo) Delete(string) error { return nil }

type memoryThirdPartyRepo struct{ byID map[string]*entity.ThirdParty }

func (r *memoryThirdPartyRepo) Create(tp *entity.ThirdParty) error { r.byID[tp.ID] = tp; return nil }
func (r *memoryThirdPartyRepo) GetByID(id string) (*entity.ThirdParty, error) {
	return r.byID[id], nil
}
func (r *memoryThirdPartyRepo) Update(*entity.ThirdParty) error { return nil }
func (r *memoryThirdPartyRepo) ListByOwner(string, int, int) ([]*entity.ThirdParty, error) {
	return nil, nil
}
func (r *memoryThirdPartyRepo) Delete(string) error { return nil }

type memoryCostCenterRepo struct{ byID map[string]*entity.CostCenter }

func (r *memoryCostCenterRepo) Create(cc *entity.CostCenter) error { r.byID[cc.ID] = cc; return nil }
func (r *memoryCostCenterRepo) GetByID(id string) (*entity.CostCenter, error) {
	return r.byID[id], nil
}
func (r *memoryCostCenterRepo) GetByOwnerAndCode(ownerID, code string) (*entity.CostCenter, error) {
	return nil, nil
}
func (r *memoryCostCenterRepo) Update(*entity.CostCenter) error { return nil }
func (r *memoryCostCenterRepo) ListByOwner(string, int, int) ([]*entity.CostCenter, error) {
	return nil, nil
}
func (r *memoryCostCenterRepo) Delete(string) error { return nil }
