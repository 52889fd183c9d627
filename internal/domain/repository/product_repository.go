package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// La unicidad es por (propietario, nombre, categoría).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByNameAndCategory(ctx context.Context, ownerID, name, categoryID string) (*entity.Product, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
