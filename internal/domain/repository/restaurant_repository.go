package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// RestaurantRepository define el puerto de persistencia para Restaurant (DIP).
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	GetByID(ctx context.Context, id string) (*entity.Restaurant, error)
	GetByCode(ctx context.Context, ownerID, code string) (*entity.Restaurant, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	Delete(ctx context.Context, id string) error
}
