package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Unidades ──────────────────────────────────────────────────────────────────

// CreateUnitRequest alta de unidad de medida.
type CreateUnitRequest struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Symbol     string `json:"symbol"`
	IsCurrency bool   `json:"is_currency"`
}

// UpdateUnitRequest actualización parcial de unidad.
type UpdateUnitRequest struct {
	Name       *string `json:"name"`
	Kind       *string `json:"kind"`
	Symbol     *string `json:"symbol"`
	IsCurrency *bool   `json:"is_currency"`
}

// UnitResponse unidad serializada.
type UnitResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	Symbol     string    `json:"symbol,omitempty"`
	IsCurrency bool      `json:"is_currency"`
	CreatedAt  time.Time `json:"created_at"`
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest renombrado de categoría.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

// CategoryResponse categoría serializada.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ── Restaurantes ──────────────────────────────────────────────────────────────

// CreateRestaurantRequest alta de restaurante. Code se normaliza a 3 letras
// mayúsculas (ej. 'ALP').
type CreateRestaurantRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

// UpdateRestaurantRequest actualización parcial de restaurante.
type UpdateRestaurantRequest struct {
	Name    *string `json:"name"`
	Code    *string `json:"code"`
	Address *string `json:"address"`
	Contact *string `json:"contact"`
}

// RestaurantResponse restaurante serializado.
type RestaurantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CreateProductRequest alta de producto. RefPrice viaja como texto decimal
// (igual que qty/price de los ítems) y puede omitirse.
type CreateProductRequest struct {
	Name          string  `json:"name"`
	CategoryID    string  `json:"category_id"`
	DefaultUnitID string  `json:"default_unit_id"`
	RefPrice      *string `json:"ref_price"`
}

// UpdateProductRequest actualización parcial de producto.
type UpdateProductRequest struct {
	Name          *string `json:"name"`
	CategoryID    *string `json:"category_id"`
	DefaultUnitID *string `json:"default_unit_id"`
	RefPrice      *string `json:"ref_price"`
}

// ProductResponse producto serializado con nombres resueltos para el frontend.
type ProductResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	CategoryID      string           `json:"category_id"`
	CategoryName    string           `json:"category_name,omitempty"`
	DefaultUnitID   string           `json:"default_unit_id,omitempty"`
	DefaultUnitName string           `json:"default_unit_name,omitempty"`
	RefPrice        *decimal.Decimal `json:"ref_price"`
	CreatedAt       time.Time        `json:"created_at"`
}

// ── Config pública ────────────────────────────────────────────────────────────

// ConfigResponse catálogo completo para el builder público de listas
// (restaurantes, categorías, productos y unidades, ordenados por nombre).
type ConfigResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
	Categories  []CategoryResponse   `json:"categories"`
	Products    []ProductResponse    `json:"products"`
	Units       []UnitResponse       `json:"units"`
}
