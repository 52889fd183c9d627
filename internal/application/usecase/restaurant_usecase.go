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

// RestaurantUseCase casos de uso CRUD para restaurantes.
type RestaurantUseCase struct {
	repo repository.RestaurantRepository
}

// NewRestaurantUseCase construye el caso de uso.
func NewRestaurantUseCase(repo repository.RestaurantRepository) *RestaurantUseCase {
	return &RestaurantUseCase{repo: repo}
}

// Create crea un nuevo restaurante. El código se normaliza (mayúsculas, 3
// letras) y debe ser único por propietario: entra en los correlativos de serie.
func (uc *RestaurantUseCase) Create(ctx context.Context, ownerID string, in dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	code := entity.NormalizeCode(in.Code)
	if in.Name == "" || code == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(ctx, ownerID, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	restaurant := &entity.Restaurant{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		Code:      code,
		Address:   in.Address,
		Contact:   in.Contact,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	return toRestaurantResponse(restaurant), nil
}

// GetByID obtiene un restaurante del propietario.
func (uc *RestaurantUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.RestaurantResponse, error) {
	restaurant, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil || restaurant.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return toRestaurantResponse(restaurant), nil
}

// Update actualiza un restaurante del propietario. Cambiar el código no
// reescribe correlativos ya emitidos: solo afecta a listas futuras.
func (uc *RestaurantUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	restaurant, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil || restaurant.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		restaurant.Name = *in.Name
	}
	if in.Code != nil {
		code := entity.NormalizeCode(*in.Code)
		if code == "" {
			return nil, domain.ErrInvalidInput
		}
		if code != restaurant.Code {
			existing, err := uc.repo.GetByCode(ctx, ownerID, code)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		restaurant.Code = code
	}
	if in.Address != nil {
		restaurant.Address = *in.Address
	}
	if in.Contact != nil {
		restaurant.Contact = *in.Contact
	}
	if err := uc.repo.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return toRestaurantResponse(restaurant), nil
}

// List lista los restaurantes del propietario.
func (uc *RestaurantUseCase) List(ctx context.Context, ownerID string) ([]dto.RestaurantResponse, error) {
	restaurants, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, *toRestaurantResponse(r))
	}
	return out, nil
}

// Delete elimina un restaurante. Falla con ErrConflict mientras tenga listas.
func (uc *RestaurantUseCase) Delete(ctx context.Context, ownerID, id string) error {
	restaurant, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if restaurant == nil || restaurant.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toRestaurantResponse(r *entity.Restaurant) *dto.RestaurantResponse {
	if r == nil {
		return nil
	}
	return &dto.RestaurantResponse{
		ID:        r.ID,
		Name:      r.Name,
		Code:      r.Code,
		Address:   r.Address,
		Contact:   r.Contact,
		CreatedAt: r.CreatedAt,
	}
}
