package lists

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// Cada operación del ciclo de vida (updatePrices, finalize, complete) corre
// completa dentro de una sola transacción: no hay estados parciales observables.
type TxRunner interface {
	RunLists(ctx context.Context, fn func(
		listRepo repository.PurchaseListRepository,
		unitRepo repository.UnitRepository,
		productRepo repository.ProductRepository,
		restaurantRepo repository.RestaurantRepository,
	) error) error
}
