package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/Compras-api/internal/application/dto"
)

// ConfigUseCase arma el catálogo completo que consume el builder público de
// listas: todo lo necesario para crear una lista sin más llamadas.
type ConfigUseCase struct {
	units       *UnitUseCase
	categories  *CategoryUseCase
	restaurants *RestaurantUseCase
	products    *ProductUseCase
}

// NewConfigUseCase construye el caso de uso.
func NewConfigUseCase(units *UnitUseCase, categories *CategoryUseCase, restaurants *RestaurantUseCase, products *ProductUseCase) *ConfigUseCase {
	return &ConfigUseCase{units: units, categories: categories, restaurants: restaurants, products: products}
}

// configPageSize coincide con el tope de PageRequest: páginas mayores se
// recortarían y el paginado terminaría antes de tiempo.
const configPageSize = 100

// Get devuelve el catálogo del propietario, cada colección ordenada por nombre.
func (uc *ConfigUseCase) Get(ctx context.Context, ownerID string) (*dto.ConfigResponse, error) {
	restaurants, err := uc.restaurants.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categories.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	units, err := uc.units.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var products []dto.ProductResponse
	for offset := 0; ; offset += configPageSize {
		page, err := uc.products.List(ctx, ownerID, dto.PageRequest{Limit: configPageSize, Offset: offset})
		if err != nil {
			return nil, err
		}
		products = append(products, page...)
		if len(page) < configPageSize {
			break
		}
	}

	sort.Slice(restaurants, func(i, j int) bool { return restaurants[i].Name < restaurants[j].Name })
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	sort.Slice(units, func(i, j int) bool { return units[i].Name < units[j].Name })
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })

	return &dto.ConfigResponse{
		Restaurants: restaurants,
		Categories:  categories,
		Products:    products,
		Units:       units,
	}, nil
}
