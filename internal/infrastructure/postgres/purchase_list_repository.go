package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.PurchaseListRepository = (*PurchaseListRepo)(nil)

// PurchaseListRepo implementación del puerto PurchaseListRepository sobre
// PostgreSQL (usable con pool o tx). Las operaciones de finalización solo son
// seguras dentro de una transacción (ver TxRunner).
type PurchaseListRepo struct {
	q Querier
}

// NewPurchaseListRepository construye el adaptador de persistencia para listas. Pasar pool o tx (Querier).
func NewPurchaseListRepository(q Querier) *PurchaseListRepo {
	return &PurchaseListRepo{q: q}
}

const listColumns = `id, owner_id, restaurant_id, COALESCE(series_code, ''), status, notes, observation, created_by, created_at, finalized_at`

// Create persiste una nueva lista en borrador.
func (r *PurchaseListRepo) Create(ctx context.Context, list *entity.PurchaseList) error {
	query := `
		INSERT INTO purchase_lists (id, owner_id, restaurant_id, series_code, status, notes, observation, created_by, created_at, finalized_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		list.ID, list.OwnerID, list.RestaurantID, nullIfEmpty(list.SeriesCode),
		list.Status, list.Notes, list.Observation, list.CreatedBy, list.CreatedAt, list.FinalizedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrIntegrityConflict
		}
		return fmt.Errorf("insert purchase list: %w", err)
	}
	return nil
}

// GetByID obtiene una lista por ID.
func (r *PurchaseListRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseList, error) {
	query := `SELECT ` + listColumns + ` FROM purchase_lists WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// ListByOwner lista las listas del propietario, más recientes primero.
func (r *PurchaseListRepo) ListByOwner(ctx context.Context, ownerID string, f repository.ListFilter) ([]*entity.PurchaseList, error) {
	query := `SELECT ` + listColumns + ` FROM purchase_lists WHERE owner_id = $1`
	args := []any{ownerID}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.RestaurantID != "" {
		args = append(args, f.RestaurantID)
		query += fmt.Sprintf(" AND restaurant_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase lists: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseList
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// UpdateObservation sobrescribe la observación interna de la lista.
func (r *PurchaseListRepo) UpdateObservation(ctx context.Context, listID, observation string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE purchase_lists SET observation = $2 WHERE id = $1`, listID, observation)
	if err != nil {
		return fmt.Errorf("update observation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkFinal confirma la finalización en un solo UPDATE: series_code,
// status=final y finalized_at quedan visibles a la vez o no quedan. Un
// series_code duplicado (carrera perdida) -> ErrIntegrityConflict.
func (r *PurchaseListRepo) MarkFinal(ctx context.Context, listID, seriesCode string, finalizedAt time.Time) error {
	query := `
		UPDATE purchase_lists
		SET series_code = $2, status = $3, finalized_at = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, listID, seriesCode, entity.ListStatusFinal, finalizedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrIntegrityConflict
		}
		return fmt.Errorf("mark final: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una lista; sus ítems caen en cascada (FK ON DELETE CASCADE).
func (r *PurchaseListRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM purchase_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase list: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la lista.
func (r *PurchaseListRepo) CreateItem(ctx context.Context, item *entity.PurchaseListItem) error {
	query := `
		INSERT INTO purchase_list_items (id, list_id, product_id, unit_id, qty, price_soles)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.ListID, item.ProductID, item.UnitID, item.Qty, item.PriceSoles,
	)
	if err != nil {
		return fmt.Errorf("insert list item: %w", err)
	}
	return nil
}

// GetItem obtiene una línea por ID.
func (r *PurchaseListRepo) GetItem(ctx context.Context, itemID string) (*entity.PurchaseListItem, error) {
	query := `SELECT id, list_id, product_id, unit_id, qty, price_soles FROM purchase_list_items WHERE id = $1`
	var it entity.PurchaseListItem
	err := r.q.QueryRow(ctx, query, itemID).Scan(
		&it.ID, &it.ListID, &it.ProductID, &it.UnitID, &it.Qty, &it.PriceSoles,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get list item: %w", err)
	}
	return &it, nil
}

// ItemsByList lista las líneas en orden de inserción.
func (r *PurchaseListRepo) ItemsByList(ctx context.Context, listID string) ([]*entity.PurchaseListItem, error) {
	query := `
		SELECT id, list_id, product_id, unit_id, qty, price_soles
		FROM purchase_list_items WHERE list_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseListItem
	for rows.Next() {
		var it entity.PurchaseListItem
		if err := rows.Scan(&it.ID, &it.ListID, &it.ProductID, &it.UnitID, &it.Qty, &it.PriceSoles); err != nil {
			return nil, fmt.Errorf("scan list item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// UpdateItemPrice fija price_soles; un price nil lo limpia explícitamente.
func (r *PurchaseListRepo) UpdateItemPrice(ctx context.Context, itemID string, price *decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx, `UPDATE purchase_list_items SET price_soles = $2 WHERE id = $1`, itemID, price)
	if err != nil {
		return fmt.Errorf("update item price: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReserveSeriesSequence bloquea la fila del restaurante (FOR UPDATE) y cuenta
// las listas YA finalizadas en el año: el siguiente número es count+1. Los
// borradores no consumen correlativo. El bloqueo serializa finalizaciones
// concurrentes del mismo restaurante hasta el commit.
func (r *PurchaseListRepo) ReserveSeriesSequence(ctx context.Context, restaurantID string, year int) (int, error) {
	var lockedID string
	err := r.q.QueryRow(ctx, `SELECT id FROM restaurants WHERE id = $1 FOR UPDATE`, restaurantID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("lock restaurant: %w", err)
	}

	var count int
	err = r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM purchase_lists
		WHERE restaurant_id = $1
		  AND status = $2
		  AND EXTRACT(YEAR FROM finalized_at) = $3`,
		restaurantID, entity.ListStatusFinal, year,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count series: %w", err)
	}
	return count + 1, nil
}

func (r *PurchaseListRepo) scanOne(row pgx.Row) (*entity.PurchaseList, error) {
	l, err := scanList(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

func scanList(row pgx.Row) (*entity.PurchaseList, error) {
	var l entity.PurchaseList
	err := row.Scan(
		&l.ID, &l.OwnerID, &l.RestaurantID, &l.SeriesCode, &l.Status,
		&l.Notes, &l.Observation, &l.CreatedBy, &l.CreatedAt, &l.FinalizedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan purchase list: %w", err)
	}
	return &l, nil
}
