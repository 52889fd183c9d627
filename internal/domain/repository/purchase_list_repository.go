package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// ListFilter filtros opcionales para listar listas de compra.
type ListFilter struct {
	Status       string // "", "draft" o "final"
	RestaurantID string // vacío = todos
	Limit        int
	Offset       int
}

// PurchaseListRepository define el puerto de persistencia para PurchaseList y
// sus ítems (DIP). Borrar una lista elimina sus ítems en cascada.
type PurchaseListRepository interface {
	Create(ctx context.Context, list *entity.PurchaseList) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseList, error)
	ListByOwner(ctx context.Context, ownerID string, f ListFilter) ([]*entity.PurchaseList, error)
	// UpdateObservation sobrescribe la observación interna de la lista.
	UpdateObservation(ctx context.Context, listID, observation string) error
	// MarkFinal confirma la finalización: series_code, status=final y
	// finalized_at en un solo UPDATE (nunca hay estado parcial observable).
	// Devuelve domain.ErrIntegrityConflict si el series_code ya existe.
	MarkFinal(ctx context.Context, listID, seriesCode string, finalizedAt time.Time) error
	Delete(ctx context.Context, id string) error

	CreateItem(ctx context.Context, item *entity.PurchaseListItem) error
	GetItem(ctx context.Context, itemID string) (*entity.PurchaseListItem, error)
	ItemsByList(ctx context.Context, listID string) ([]*entity.PurchaseListItem, error)
	// UpdateItemPrice fija price_soles; un price nil lo limpia explícitamente.
	UpdateItemPrice(ctx context.Context, itemID string, price *decimal.Decimal) error

	// ReserveSeriesSequence devuelve el siguiente número de serie para el
	// restaurante en el año calendario dado: cuenta las listas ya creadas y
	// suma uno, bajo un bloqueo a nivel de transacción sobre el restaurante
	// para serializar finalizaciones concurrentes. Solo tiene sentido dentro
	// de una transacción (ver lists.TxRunner).
	ReserveSeriesSequence(ctx context.Context, restaurantID string, year int) (int, error)
}
