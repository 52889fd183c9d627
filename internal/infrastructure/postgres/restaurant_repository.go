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

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL (usable con pool o tx).
type RestaurantRepo struct {
	q Querier
}

// NewRestaurantRepository construye el adaptador de persistencia para restaurantes. Pasar pool o tx (Querier).
func NewRestaurantRepository(q Querier) *RestaurantRepo {
	return &RestaurantRepo{q: q}
}

const restaurantColumns = `id, owner_id, name, code, address, contact, created_at`

// Create persiste un nuevo restaurante.
func (r *RestaurantRepo) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, owner_id, name, code, address, contact, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		restaurant.ID, restaurant.OwnerID, restaurant.Name, restaurant.Code,
		restaurant.Address, restaurant.Contact, restaurant.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// GetByID obtiene un restaurante por ID.
func (r *RestaurantRepo) GetByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByCode obtiene un restaurante por propietario y código de serie.
func (r *RestaurantRepo) GetByCode(ctx context.Context, ownerID, code string) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE owner_id = $1 AND code = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, ownerID, code))
}

// ListByOwner lista los restaurantes del propietario ordenados por nombre.
func (r *RestaurantRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE owner_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	var out []*entity.Restaurant
	for rows.Next() {
		var re entity.Restaurant
		if err := rows.Scan(&re.ID, &re.OwnerID, &re.Name, &re.Code, &re.Address, &re.Contact, &re.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		out = append(out, &re)
	}
	return out, rows.Err()
}

// Update actualiza un restaurante existente.
func (r *RestaurantRepo) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `UPDATE restaurants SET name = $2, code = $3, address = $4, contact = $5 WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		restaurant.ID, restaurant.Name, restaurant.Code, restaurant.Address, restaurant.Contact,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update restaurant: %w", err)
	}
	return nil
}

// Delete elimina un restaurante. Con listas que lo referencien -> ErrConflict.
func (r *RestaurantRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete restaurant: %w", err)
	}
	return nil
}

func (r *RestaurantRepo) scanOne(row pgx.Row) (*entity.Restaurant, error) {
	var re entity.Restaurant
	err := row.Scan(&re.ID, &re.OwnerID, &re.Name, &re.Code, &re.Address, &re.Contact, &re.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &re, nil
}
