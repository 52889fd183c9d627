package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Listas de compra ──────────────────────────────────────────────────────────

// CreateListRequest alta de lista (siempre nace en borrador).
type CreateListRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Notes        string `json:"notes"`
	Observation  string `json:"observation"`
}

// ListResponse lista serializada con sus ítems.
type ListResponse struct {
	ID           string             `json:"id"`
	RestaurantID string             `json:"restaurant_id"`
	SeriesCode   string             `json:"series_code,omitempty"`
	Status       string             `json:"status"`
	Notes        string             `json:"notes,omitempty"`
	Observation  string             `json:"observation,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	FinalizedAt  *time.Time         `json:"finalized_at,omitempty"`
	Items        []ListItemResponse `json:"items"`
}

// ── Ítems ─────────────────────────────────────────────────────────────────────

// AddItemRequest alta de ítem. Qty y Price viajan como texto decimal
// ("3", "12.50"); el parseo es explícito y un valor inválido se rechaza con
// INVALID_QUANTITY / INVALID_PRICE, nunca se degrada a cero.
type AddItemRequest struct {
	ProductID string  `json:"product_id"`
	UnitID    string  `json:"unit_id"`
	Qty       *string `json:"qty"`
	Price     *string `json:"price"`
}

// ListItemResponse ítem serializado con campos de ayuda para el frontend.
type ListItemResponse struct {
	ID             string           `json:"id"`
	ListID         string           `json:"purchase_list"`
	ProductID      string           `json:"product"`
	ProductName    string           `json:"product_name,omitempty"`
	UnitID         string           `json:"unit"`
	UnitName       string           `json:"unit_name,omitempty"`
	UnitIsCurrency bool             `json:"unit_is_currency"`
	Qty            decimal.Decimal  `json:"qty"`
	PriceSoles     *decimal.Decimal `json:"price_soles"`
}

// ── Actualización de precios / finalización ───────────────────────────────────

// ItemPriceUpdate precio para un ítem puntual; Price nil limpia price_soles.
type ItemPriceUpdate struct {
	ItemID string  `json:"id"`
	Price  *string `json:"price"`
}

// UpdatePricesRequest parche masivo de precios sobre una lista en borrador.
// Observation, si viene, sobrescribe la observación de la lista.
type UpdatePricesRequest struct {
	Items       []ItemPriceUpdate `json:"items"`
	Observation *string           `json:"observation"`
}

// UpdatePricesResponse cuántos ítems fueron tocados realmente (los de unidad
// monetaria se omiten en silencio).
type UpdatePricesResponse struct {
	UpdatedCount int `json:"updated_count"`
}

// FinalizeResponse resultado de una finalización exitosa.
type FinalizeResponse struct {
	SeriesCode  string    `json:"series_code"`
	FinalizedAt time.Time `json:"finalized_at"`
}

// CompleteRequest parche de precios + intento de finalización atómica.
type CompleteRequest struct {
	Items       []ItemPriceUpdate `json:"items"`
	Observation *string           `json:"observation"`
}

// CompleteResponse resultado de complete. Finalized=false con precios aún
// incompletos NO es un error: es una respuesta terminal válida que reporta el
// avance y qué productos siguen sin precio.
type CompleteResponse struct {
	UpdatedCount    int        `json:"updated_count"`
	Finalized       bool       `json:"finalized"`
	SeriesCode      string     `json:"series_code,omitempty"`
	FinalizedAt     *time.Time `json:"finalized_at,omitempty"`
	MissingProducts []string   `json:"missing_products,omitempty"`
}

// ── Renderizado ───────────────────────────────────────────────────────────────

// RenderableLine línea lista para el renderizador (PDF/HTML) con la etiqueta
// de unidad ya resuelta y el subtotal calculado.
type RenderableLine struct {
	Product    string           `json:"product"`
	UnitLabel  string           `json:"unit_label"`
	Qty        decimal.Decimal  `json:"qty"`
	Price      *decimal.Decimal `json:"price"`
	Subtotal   decimal.Decimal  `json:"subtotal"`
	IsCurrency bool             `json:"is_currency"`
}

// RenderableList lista completa para el renderizador.
type RenderableList struct {
	SeriesCode  string           `json:"series_code,omitempty"`
	Status      string           `json:"status"`
	Restaurant  string           `json:"restaurant"`
	Notes       string           `json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	FinalizedAt *time.Time       `json:"finalized_at,omitempty"`
	Lines       []RenderableLine `json:"lines"`
	Total       decimal.Decimal  `json:"total"`
}
