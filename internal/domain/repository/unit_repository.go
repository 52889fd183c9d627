package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// UnitRepository define el puerto de persistencia para Unit (DIP).
// Delete debe fallar con domain.ErrConflict si la unidad está referenciada
// por algún ítem o producto (borrado bloqueado, nunca en cascada).
type UnitRepository interface {
	Create(ctx context.Context, unit *entity.Unit) error
	GetByID(ctx context.Context, id string) (*entity.Unit, error)
	GetByName(ctx context.Context, ownerID, name string) (*entity.Unit, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Unit, error)
	Update(ctx context.Context, unit *entity.Unit) error
	Delete(ctx context.Context, id string) error
}
