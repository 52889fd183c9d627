package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador de persistencia para unidades. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

const unitColumns = `id, owner_id, name, kind, symbol, is_currency, created_at`

// Create persiste una nueva unidad.
func (r *UnitRepo) Create(ctx context.Context, unit *entity.Unit) error {
	query := `
		INSERT INTO units (id, owner_id, name, kind, symbol, is_currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		unit.ID, unit.OwnerID, unit.Name, unit.Kind, unit.Symbol, unit.IsCurrency, unit.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID.
func (r *UnitRepo) GetByID(ctx context.Context, id string) (*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByName obtiene una unidad por propietario y nombre.
func (r *UnitRepo) GetByName(ctx context.Context, ownerID, name string) (*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE owner_id = $1 AND name = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, ownerID, name))
}

// ListByOwner lista las unidades del propietario ordenadas por nombre.
func (r *UnitRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE owner_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var out []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.OwnerID, &u.Name, &u.Kind, &u.Symbol, &u.IsCurrency, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// Update actualiza una unidad existente.
func (r *UnitRepo) Update(ctx context.Context, unit *entity.Unit) error {
	query := `UPDATE units SET name = $2, kind = $3, symbol = $4, is_currency = $5 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, unit.ID, unit.Name, unit.Kind, unit.Symbol, unit.IsCurrency)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// Delete elimina una unidad. Referenciada por ítems o productos -> ErrConflict.
func (r *UnitRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

func (r *UnitRepo) scanOne(row pgx.Row) (*entity.Unit, error) {
	var u entity.Unit
	err := row.Scan(&u.ID, &u.OwnerID, &u.Name, &u.Kind, &u.Symbol, &u.IsCurrency, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}
