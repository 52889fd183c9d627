package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// UnitUseCase casos de uso CRUD para unidades de medida.
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

func validUnitKind(kind string) bool {
	switch kind {
	case entity.UnitKindMass, entity.UnitKindCount, entity.UnitKindCurrency,
		entity.UnitKindPackage, entity.UnitKindOther:
		return true
	}
	return false
}

// Create crea una nueva unidad. El nombre es único por propietario.
func (uc *UnitUseCase) Create(ctx context.Context, ownerID string, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	kind := in.Kind
	if kind == "" {
		kind = entity.UnitKindOther
	}
	if !validUnitKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(ctx, ownerID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	unit := &entity.Unit{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		Name:       in.Name,
		Kind:       kind,
		Symbol:     in.Symbol,
		IsCurrency: in.IsCurrency,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// GetByID obtiene una unidad del propietario.
func (uc *UnitUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil || unit.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return toUnitResponse(unit), nil
}

// Update actualiza una unidad del propietario.
func (uc *UnitUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil || unit.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		unit.Name = *in.Name
	}
	if in.Kind != nil {
		if !validUnitKind(*in.Kind) {
			return nil, domain.ErrInvalidInput
		}
		unit.Kind = *in.Kind
	}
	if in.Symbol != nil {
		unit.Symbol = *in.Symbol
	}
	if in.IsCurrency != nil {
		unit.IsCurrency = *in.IsCurrency
	}
	if err := uc.repo.Update(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// List lista las unidades del propietario.
func (uc *UnitUseCase) List(ctx context.Context, ownerID string) ([]dto.UnitResponse, error) {
	units, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, *toUnitResponse(u))
	}
	return out, nil
}

// Delete elimina una unidad. Falla con ErrConflict si está referenciada.
func (uc *UnitUseCase) Delete(ctx context.Context, ownerID, id string) error {
	unit, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if unit == nil || unit.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	if u == nil {
		return nil
	}
	return &dto.UnitResponse{
		ID:         u.ID,
		Name:       u.Name,
		Kind:       u.Kind,
		Symbol:     u.Symbol,
		IsCurrency: u.IsCurrency,
		CreatedAt:  u.CreatedAt,
	}
}
