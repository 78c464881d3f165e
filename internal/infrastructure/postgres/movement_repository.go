package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, transaction_id, owner_id, material_id, kind, quantity, unit_price, date,
		supplier_id, employee_id, third_party_id, destination_type, cost_center_id, notes, created_at, created_by`

// Create persiste una fila del libro de movimientos.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.TransactionID, movement.OwnerID, movement.MaterialID,
		movement.Kind, movement.Quantity, movement.UnitPrice, movement.Date,
		nullable(movement.SupplierID), nullable(movement.EmployeeID), nullable(movement.ThirdPartyID),
		nullable(movement.DestinationType), nullable(movement.CostCenterID), nullable(movement.Notes),
		movement.CreatedAt, nullable(movement.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene una fila del libro por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Delete elimina una fila del libro.
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// ListByMaterial devuelve el libro completo de un material en orden
// cronológico (fecha de negocio, luego fecha de creación). El orden es un
// requisito de corrección del costeo FIFO.
func (r *MovementRepo) ListByMaterial(materialID, ownerID string) ([]entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE material_id = $1`
	args := []any{materialID}
	if ownerID != "" {
		query += ` AND owner_id = $2`
		args = append(args, ownerID)
	}
	query += ` ORDER BY date ASC, created_at ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list by material: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// List aplica los filtros de reporte, en orden cronológico ascendente.
// El filtro por categoría requiere join contra materials (la categoría vive
// en el material, no en la fila del libro).
func (r *MovementRepo) List(filter repository.MovementFilter) ([]entity.Movement, error) {
	query := `
		SELECT m.id, m.transaction_id, m.owner_id, m.material_id, m.kind, m.quantity, m.unit_price, m.date,
		m.supplier_id, m.employee_id, m.third_party_id, m.destination_type, m.cost_center_id, m.notes, m.created_at, m.created_by
		FROM movements m`
	var args []any
	pos := 1
	if filter.CategoryID != "" {
		query += ` JOIN materials mat ON mat.id = m.material_id`
	}
	query += ` WHERE 1=1`
	if filter.OwnerID != "" {
		query += fmt.Sprintf(" AND m.owner_id = $%d", pos)
		args = append(args, filter.OwnerID)
		pos++
	}
	if filter.MaterialID != "" {
		query += fmt.Sprintf(" AND m.material_id = $%d", pos)
		args = append(args, filter.MaterialID)
		pos++
	}
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND mat.category_id = $%d", pos)
		args = append(args, filter.CategoryID)
		pos++
	}
	if filter.CostCenterID != "" {
		query += fmt.Sprintf(" AND m.cost_center_id = $%d", pos)
		args = append(args, filter.CostCenterID)
		pos++
	}
	if filter.Kind != "" {
		query += fmt.Sprintf(" AND m.kind = $%d", pos)
		args = append(args, filter.Kind)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND m.date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND m.date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += ` ORDER BY m.date ASC, m.created_at ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var supplierID, employeeID, thirdPartyID, destinationType, costCenterID, notes, createdBy *string
	err := row.Scan(
		&m.ID, &m.TransactionID, &m.OwnerID, &m.MaterialID, &m.Kind, &m.Quantity, &m.UnitPrice, &m.Date,
		&supplierID, &employeeID, &thirdPartyID, &destinationType, &costCenterID, &notes,
		&m.CreatedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}
	m.SupplierID = deref(supplierID)
	m.EmployeeID = deref(employeeID)
	m.ThirdPartyID = deref(thirdPartyID)
	m.DestinationType = deref(destinationType)
	m.CostCenterID = deref(costCenterID)
	m.Notes = deref(notes)
	m.CreatedBy = deref(createdBy)
	return &m, nil
}

func collectMovements(rows pgx.Rows) ([]entity.Movement, error) {
	var list []entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}
