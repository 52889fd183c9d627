package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de compras.
// Pertenece a exactamente una categoría; la unidad por defecto y el precio
// referencial son opcionales (ayudas para el armado de listas).
type Product struct {
	ID            string
	OwnerID       string
	Name          string // único por (propietario, categoría)
	CategoryID    string
	DefaultUnitID string           // vacío = sin unidad por defecto
	RefPrice      *decimal.Decimal // nil = sin precio referencial
	CreatedAt     time.Time
}
