package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/purchase"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	unitRepo     repository.UnitRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, unitRepo repository.UnitRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, unitRepo: unitRepo}
}

// Create crea un producto. El nombre es único por (propietario, categoría);
// la categoría es obligatoria, la unidad por defecto y el precio referencial no.
func (uc *ProductUseCase) Create(ctx context.Context, ownerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.OwnerID != ownerID {
		return nil, domain.ErrInvalidInput
	}
	if in.DefaultUnitID != "" {
		unit, err := uc.unitRepo.GetByID(ctx, in.DefaultUnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil || unit.OwnerID != ownerID {
			return nil, domain.ErrInvalidUnit
		}
	}
	refPrice, err := purchase.ParsePrice(in.RefPrice)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByNameAndCategory(ctx, ownerID, in.Name, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Name:          in.Name,
		CategoryID:    in.CategoryID,
		DefaultUnitID: in.DefaultUnitID,
		RefPrice:      refPrice,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, product), nil
}

// GetByID obtiene un producto del propietario.
func (uc *ProductUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(ctx, product), nil
}

// Update actualiza un producto del propietario. RefPrice distingue tres
// estados: ausente (no tocar), "" (limpiar) y un decimal (reemplazar).
func (uc *ProductUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.OwnerID != ownerID {
			return nil, domain.ErrInvalidInput
		}
		product.CategoryID = *in.CategoryID
	}
	if in.DefaultUnitID != nil {
		if *in.DefaultUnitID == "" {
			product.DefaultUnitID = ""
		} else {
			unit, err := uc.unitRepo.GetByID(ctx, *in.DefaultUnitID)
			if err != nil {
				return nil, err
			}
			if unit == nil || unit.OwnerID != ownerID {
				return nil, domain.ErrInvalidUnit
			}
			product.DefaultUnitID = *in.DefaultUnitID
		}
	}
	if in.RefPrice != nil {
		if *in.RefPrice == "" {
			product.RefPrice = nil
		} else {
			refPrice, err := purchase.ParsePrice(in.RefPrice)
			if err != nil {
				return nil, err
			}
			product.RefPrice = refPrice
		}
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, product), nil
}

// List lista los productos del propietario con paginación.
func (uc *ProductUseCase) List(ctx context.Context, ownerID string, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.ListByOwner(ctx, ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *uc.toResponse(ctx, p))
	}
	return out, nil
}

// Delete elimina un producto. Falla con ErrConflict si aparece en alguna lista.
func (uc *ProductUseCase) Delete(ctx context.Context, ownerID, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil || product.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// toResponse resuelve los nombres de categoría y unidad para el frontend.
// Un lookup fallido deja el nombre vacío, nunca tumba la respuesta.
func (uc *ProductUseCase) toResponse(ctx context.Context, p *entity.Product) *dto.ProductResponse {
	out := &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		DefaultUnitID: p.DefaultUnitID,
		RefPrice:      p.RefPrice,
		CreatedAt:     p.CreatedAt,
	}
	if category, err := uc.categoryRepo.GetByID(ctx, p.CategoryID); err == nil && category != nil {
		out.CategoryName = category.Name
	}
	if p.DefaultUnitID != "" {
		if unit, err := uc.unitRepo.GetByID(ctx, p.DefaultUnitID); err == nil && unit != nil {
			out.DefaultUnitName = unit.Name
		}
	}
	return out
}
