package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportItemRow es una línea plana ya resuelta (lista + restaurante +
// categoría + producto + unidad) para el agregador de rangos. El agregador no
// vuelve a consultar nada: trabaja sobre este snapshot de solo lectura.
type ReportItemRow struct {
	ListID         string
	ListCreatedAt  time.Time
	RestaurantName string
	CategoryID     string
	CategoryName   string
	ProductID      string
	ProductName    string
	UnitName       string
	UnitSymbol     string
	UnitIsCurrency bool
	Qty            decimal.Decimal
	PriceSoles     *decimal.Decimal
}

// ReportQuery rango y filtros de selección del reporte. El rango es inclusivo
// y se aplica sobre la fecha de creación de la lista, no del ítem.
type ReportQuery struct {
	OwnerID   string
	Start     time.Time
	End       time.Time
	OnlyFinal bool
}

// ReportRepository define el puerto de lectura para el motor de reportes (DIP).
// Consulta de solo lectura sobre un snapshot consistente; no bloquea ni escribe.
type ReportRepository interface {
	ItemRows(ctx context.Context, q ReportQuery) ([]ReportItemRow, error)
}
