package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL
// (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de persistencia para materiales. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, owner_id, category_id, name, unit, current_stock, minimum_stock, unit_price, status, created_at, updated_at`

// Create persiste un nuevo material. El stock inicia en 0.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `
		INSERT INTO materials (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.OwnerID, nullable(material.CategoryID), material.Name, material.Unit,
		material.CurrentStock, material.MinimumStock, material.UnitPrice, material.Status,
		material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	return r.getOne(query, id)
}

// GetForUpdate obtiene el material y bloquea la fila (SELECT FOR UPDATE) para
// serializar entradas/salidas concurrentes sobre el mismo material. Solo
// tiene sentido dentro de una transacción.
func (r *MaterialRepo) GetForUpdate(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

// GetByOwnerAndName obtiene un material por empresa y nombre.
func (r *MaterialRepo) GetByOwnerAndName(ownerID, name string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE owner_id = $1 AND name = $2`
	return r.getOne(query, ownerID, name)
}

// Update actualiza los campos editables de un material (no toca current_stock ni unit_price).
func (r *MaterialRepo) Update(material *entity.Material) error {
	query := `
		UPDATE materials
		SET category_id = $2, name = $3, unit = $4, minimum_stock = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, nullable(material.CategoryID), material.Name, material.Unit,
		material.MinimumStock, material.Status, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// UpdateStock reescribe el cache current_stock con el valor derivado del libro.
func (r *MaterialRepo) UpdateStock(id string, stock int64) error {
	query := `UPDATE materials SET current_stock = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// UpdateUnitPrice actualiza el precio de display (último precio de proveedor).
func (r *MaterialRepo) UpdateUnitPrice(id string, price decimal.Decimal) error {
	query := `UPDATE materials SET unit_price = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, price)
	if err != nil {
		return fmt.Errorf("update unit price: %w", err)
	}
	return nil
}

// ListByOwner lista materiales de una empresa con paginación.
func (r *MaterialRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials`
	var args []any
	if ownerID != "" {
		query += ` WHERE owner_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
		args = []any{ownerID, limit, offset}
	} else {
		query += ` ORDER BY name ASC LIMIT $1 OFFSET $2`
		args = []any{limit, offset}
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	return collectMaterials(rows)
}

// ListBelowMinimum lista los materiales cuyo stock cacheado está por debajo
// del mínimo configurado (mínimo 0 significa sin alerta).
func (r *MaterialRepo) ListBelowMinimum(ownerID string) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE minimum_stock > 0 AND current_stock < minimum_stock`
	var args []any
	if ownerID != "" {
		query += ` AND owner_id = $1`
		args = append(args, ownerID)
	}
	query += ` ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list below minimum: %w", err)
	}
	defer rows.Close()
	return collectMaterials(rows)
}

// Delete elimina un material por ID.
func (r *MaterialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

func (r *MaterialRepo) getOne(query string, args ...any) (*entity.Material, error) {
	var m entity.Material
	var categoryID *string
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&m.ID, &m.OwnerID, &categoryID, &m.Name, &m.Unit, &m.CurrentStock,
		&m.MinimumStock, &m.UnitPrice, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	m.CategoryID = deref(categoryID)
	return &m, nil
}

func collectMaterials(rows pgx.Rows) ([]*entity.Material, error) {
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		var categoryID *string
		if err := rows.Scan(&m.ID, &m.OwnerID, &categoryID, &m.Name, &m.Unit, &m.CurrentStock,
			&m.MinimumStock, &m.UnitPrice, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		m.CategoryID = deref(categoryID)
		list = append(list, &m)
	}
	return list, rows.Err()
}
