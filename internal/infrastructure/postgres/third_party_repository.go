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

var _ repository.ThirdPartyRepository = (*ThirdPartyRepo)(nil)

// ThirdPartyRepo implementación del puerto ThirdPartyRepository sobre PostgreSQL.
type ThirdPartyRepo struct {
	q Querier
}

// NewThirdPartyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewThirdPartyRepository(q Querier) *ThirdPartyRepo {
	return &ThirdPartyRepo{q: q}
}

const thirdPartyColumns = `id, owner_id, name, document, phone, status, created_at, updated_at`

// Create persiste un nuevo tercero.
func (r *ThirdPartyRepo) Create(thirdParty *entity.ThirdParty) error {
	query := `
		INSERT INTO third_parties (` + thirdPartyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		thirdParty.ID, thirdParty.OwnerID, thirdParty.Name, nullable(thirdParty.Document),
		nullable(thirdParty.Phone), thirdParty.Status, thirdParty.CreatedAt, thirdParty.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert third party: %w", err)
	}
	return nil
}

// GetByID obtiene un tercero por ID.
func (r *ThirdPartyRepo) GetByID(id string) (*entity.ThirdParty, error) {
	query := `SELECT ` + thirdPartyColumns + ` FROM third_parties WHERE id = $1`
	t, err := scanThirdParty(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get third party: %w", err)
	}
	return t, nil
}

// Update actualiza un tercero.
func (r *ThirdPartyRepo) Update(thirdParty *entity.ThirdParty) error {
	query := `
		UPDATE third_parties SET name = $2, document = $3, phone = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		thirdParty.ID, thirdParty.Name, nullable(thirdParty.Document), nullable(thirdParty.Phone),
		thirdParty.Status, thirdParty.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update third party: %w", err)
	}
	return nil
}

// ListByOwner lista terceros de una empresa con paginación.
func (r *ThirdPartyRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.ThirdParty, error) {
	query := `SELECT ` + thirdPartyColumns + ` FROM third_parties WHERE owner_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list third parties: %w", err)
	}
	defer rows.Close()
	var list []*entity.ThirdParty
	for rows.Next() {
		t, err := scanThirdParty(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Delete elimina un tercero por ID.
func (r *ThirdPartyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM third_parties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete third party: %w", err)
	}
	return nil
}

func scanThirdParty(row pgx.Row) (*entity.ThirdParty, error) {
	var t entity.ThirdParty
	var document, phone *string
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Name, &document, &phone, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Document = deref(document)
	t.Phone = deref(phone)
	return &t, nil
}
