package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.CostCenterRepository = (*CostCenterRepo)(nil)

// CostCenterRepo implementación del puerto CostCenterRepository sobre PostgreSQL.
type CostCenterRepo struct {
	q Querier
}

// NewCostCenterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCostCenterRepository(q Querier) *CostCenterRepo {
	return &CostCenterRepo{q: q}
}

const costCenterColumns = `id, owner_id, code, name, description, status, created_at, updated_at`

// Create persiste un nuevo centro de costo.
func (r *CostCenterRepo) Create(costCenter *entity.CostCenter) error {
	query := `
		INSERT INTO cost_centers (` + costCenterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		costCenter.ID, costCenter.OwnerID, costCenter.Code, costCenter.Name,
		nullable(costCenter.Description), costCenter.Status, costCenter.CreatedAt, costCenter.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cost center: %w", err)
	}
	return nil
}

// GetByID obtiene un centro de costo por ID.
func (r *CostCenterRepo) GetByID(id string) (*entity.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE id = $1`
	return r.getOne(query, id)
}

// GetByOwnerAndCode obtiene un centro de costo por empresa y código.
func (r *CostCenterRepo) GetByOwnerAndCode(ownerID, code string) (*entity.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE owner_id = $1 AND code = $2`
	return r.getOne(query, ownerID, code)
}

// Update actualiza un centro de costo.
func (r *CostCenterRepo) Update(costCenter *entity.CostCenter) error {
	query := `
		UPDATE cost_centers SET code = $2, name = $3, description = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		costCenter.ID, costCenter.Code, costCenter.Name, nullable(costCenter.Description),
		costCenter.Status, costCenter.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cost center: %w", err)
	}
	return nil
}

// ListByOwner lista centros de costo de una empresa con paginación.
func (r *CostCenterRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE owner_id = $1 ORDER BY code ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cost centers: %w", err)
	}
	defer rows.Close()
	var list []*entity.CostCenter
	for rows.Next() {
		cc, err := scanCostCenter(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, cc)
	}
	return list, rows.Err()
}

// Delete elimina un centro de costo por ID.
func (r *CostCenterRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cost_centers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cost center: %w", err)
	}
	return nil
}

func (r *CostCenterRepo) getOne(query string, args ...any) (*entity.CostCenter, error) {
	cc, err := scanCostCenter(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost center: %w", err)
	}
	return cc, nil
}

func scanCostCenter(row pgx.Row) (*entity.CostCenter, error) {
	var cc entity.CostCenter
	var description *string
	if err := row.Scan(&cc.ID, &cc.OwnerID, &cc.Code, &cc.Name, &description, &cc.Status, &cc.CreatedAt, &cc.UpdatedAt); err != nil {
		return nil, err
	}
	cc.Description = deref(description)
	return &cc, nil
}
