package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación del puerto de lectura del motor de reportes.
// Resuelve en SQL el join lista/restaurante/categoría/producto/unidad; el
// filtrado fino y la agregación corren en el caso de uso.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de lectura para reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ItemRows devuelve las líneas planas del rango. El rango es inclusivo sobre
// la fecha de creación de la lista.
func (r *ReportRepo) ItemRows(ctx context.Context, q repository.ReportQuery) ([]repository.ReportItemRow, error) {
	query := `
		SELECT
			l.id, l.created_at,
			r.name,
			c.id, c.name,
			p.id, p.name,
			u.name, u.symbol, u.is_currency,
			i.qty, i.price_soles
		FROM purchase_list_items i
		JOIN purchase_lists l ON l.id = i.list_id
		JOIN restaurants r    ON r.id = l.restaurant_id
		JOIN products p       ON p.id = i.product_id
		JOIN categories c     ON c.id = p.category_id
		JOIN units u          ON u.id = i.unit_id
		WHERE l.owner_id = $1
		  AND l.created_at::date >= $2::date
		  AND l.created_at::date <= $3::date`
	args := []any{q.OwnerID, q.Start, q.End}
	if q.OnlyFinal {
		args = append(args, entity.ListStatusFinal)
		query += fmt.Sprintf(" AND l.status = $%d", len(args))
	}
	query += " ORDER BY l.created_at, l.id, i.position"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report rows: %w", err)
	}
	defer rows.Close()

	var out []repository.ReportItemRow
	for rows.Next() {
		var row repository.ReportItemRow
		if err := rows.Scan(
			&row.ListID, &row.ListCreatedAt,
			&row.RestaurantName,
			&row.CategoryID, &row.CategoryName,
			&row.ProductID, &row.ProductName,
			&row.UnitName, &row.UnitSymbol, &row.UnitIsCurrency,
			&row.Qty, &row.PriceSoles,
		); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
