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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `INSERT INTO categories (id, owner_id, name, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, category.ID, category.OwnerID, category.Name, category.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `SELECT id, owner_id, name, created_at FROM categories WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByName obtiene una categoría por propietario y nombre.
func (r *CategoryRepo) GetByName(ctx context.Context, ownerID, name string) (*entity.Category, error) {
	query := `SELECT id, owner_id, name, created_at FROM categories WHERE owner_id = $1 AND name = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, ownerID, name))
}

// ListByOwner lista las categorías del propietario ordenadas por nombre.
func (r *CategoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Category, error) {
	query := `SELECT id, owner_id, name, created_at FROM categories WHERE owner_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	_, err := r.q.Exec(ctx, `UPDATE categories SET name = $2 WHERE id = $1`, category.ID, category.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría. Con productos que la referencien -> ErrConflict.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) scanOne(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}
