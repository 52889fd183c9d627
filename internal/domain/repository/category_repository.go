package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Delete debe fallar con domain.ErrConflict mientras existan productos que
// referencien la categoría.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByName(ctx context.Context, ownerID, name string) (*entity.Category, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
