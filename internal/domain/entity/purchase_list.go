package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una lista de compra.
// La transición es de un solo sentido: draft → final.
const (
	ListStatusDraft = "draft"
	ListStatusFinal = "final"
)

// PurchaseList representa una lista de compra de un restaurante.
// SeriesCode queda vacío hasta la finalización; una vez asignado es único
// globalmente y nunca cambia.
type PurchaseList struct {
	ID           string
	OwnerID      string
	RestaurantID string
	SeriesCode   string // formato YYYY-CCC-NNNN, asignado al finalizar
	Status       string // draft | final
	Notes        string // notas generales (aparecen en el PDF)
	Observation  string // observación interna
	CreatedBy    string // vacío si fue creada por el flujo público
	CreatedAt    time.Time
	FinalizedAt  *time.Time // se fija exactamente una vez, al finalizar
}

// IsFinal informa si la lista ya es inmutable.
func (l *PurchaseList) IsFinal() bool { return l.Status == ListStatusFinal }

// PurchaseListItem representa una línea de una lista de compra.
// Si la unidad es monetaria, Qty ES el importe en soles y PriceSoles debe ser
// nil; si no lo es, Qty es la cantidad y PriceSoles el precio unitario
// (puede quedar nil mientras la lista esté en borrador).
type PurchaseListItem struct {
	ID         string
	ListID     string
	ProductID  string
	UnitID     string
	Qty        decimal.Decimal
	PriceSoles *decimal.Decimal
}
