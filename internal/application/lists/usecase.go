// Package lists implementa la máquina de estados de las listas de compra:
// draft → final, sin vuelta atrás. Aquí viven addItem, updatePrices,
// ensureComplete, finalize y complete, más el armado de líneas renderizables.
package lists

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/purchase"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// UseCase casos de uso del ciclo de vida de listas de compra.
type UseCase struct {
	txRunner       TxRunner
	listRepo       repository.PurchaseListRepository
	restaurantRepo repository.RestaurantRepository
	unitRepo       repository.UnitRepository
	productRepo    repository.ProductRepository

	now func() time.Time
}

// NewUseCase construye el caso de uso. Los repos recibidos operan sobre el
// pool (lecturas); las mutaciones multi-paso corren vía txRunner.
func NewUseCase(
	txRunner TxRunner,
	listRepo repository.PurchaseListRepository,
	restaurantRepo repository.RestaurantRepository,
	unitRepo repository.UnitRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		listRepo:       listRepo,
		restaurantRepo: restaurantRepo,
		unitRepo:       unitRepo,
		productRepo:    productRepo,
		now:            time.Now,
	}
}

// SeriesCode arma el correlativo YYYY-CCC-NNNN. El formato es un contrato
// externo persistido y debe permanecer estable byte a byte.
func SeriesCode(year int, restaurantCode string, seq int) string {
	return fmt.Sprintf("%d-%s-%04d", year, restaurantCode, seq)
}

// ── Creación y lectura ────────────────────────────────────────────────────────

// Create crea una lista en borrador para el restaurante indicado.
// createdBy vacío = flujo público (builder sin sesión).
func (uc *UseCase) Create(ctx context.Context, createdBy string, in dto.CreateListRequest) (*dto.ListResponse, error) {
	if in.RestaurantID == "" {
		return nil, domain.ErrInvalidInput
	}
	restaurant, err := uc.restaurantRepo.GetByID(ctx, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrNotFound
	}
	list := &entity.PurchaseList{
		ID:           uuid.New().String(),
		OwnerID:      restaurant.OwnerID,
		RestaurantID: restaurant.ID,
		Status:       entity.ListStatusDraft,
		Notes:        in.Notes,
		Observation:  in.Observation,
		CreatedBy:    createdBy,
		CreatedAt:    uc.now(),
	}
	if err := uc.listRepo.Create(ctx, list); err != nil {
		return nil, err
	}
	return uc.toListResponse(ctx, list, nil), nil
}

// Get devuelve una lista con sus ítems.
func (uc *UseCase) Get(ctx context.Context, listID string) (*dto.ListResponse, error) {
	list, err := uc.listRepo.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.listRepo.ItemsByList(ctx, listID)
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(ctx, list, items), nil
}

// List devuelve las listas del propietario (sin ítems, para el listado).
func (uc *UseCase) List(ctx context.Context, ownerID string, f repository.ListFilter) ([]dto.ListResponse, error) {
	lists, err := uc.listRepo.ListByOwner(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ListResponse, 0, len(lists))
	for _, l := range lists {
		out = append(out, *uc.toListResponse(ctx, l, nil))
	}
	return out, nil
}

// Delete elimina una lista en borrador (los ítems caen en cascada).
// Una lista finalizada es un registro permanente y no se borra.
func (uc *UseCase) Delete(ctx context.Context, listID string) error {
	list, err := uc.listRepo.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	if list == nil {
		return domain.ErrNotFound
	}
	if list.IsFinal() {
		return domain.ErrListFinalized
	}
	return uc.listRepo.Delete(ctx, listID)
}

// ── addItem ───────────────────────────────────────────────────────────────────

// AddItem valida y agrega un ítem a una lista en borrador. Duplicados de
// (lista, producto) se permiten: varias líneas del mismo producto con
// unidades distintas son legítimas.
func (uc *UseCase) AddItem(ctx context.Context, listID string, in dto.AddItemRequest) (*dto.ListItemResponse, error) {
	list, err := uc.listRepo.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, domain.ErrNotFound
	}
	unit, err := uc.unitRepo.GetByID(ctx, in.UnitID)
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	normalized, err := purchase.Validate(
		purchase.Candidate{Qty: in.Qty, Price: in.Price},
		unit, product, list, false,
	)
	if err != nil {
		return nil, err
	}

	item := &entity.PurchaseListItem{
		ID:         uuid.New().String(),
		ListID:     list.ID,
		ProductID:  product.ID,
		UnitID:     unit.ID,
		Qty:        normalized.Qty,
		PriceSoles: normalized.Price,
	}
	if err := uc.listRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item, product, unit)
	return &resp, nil
}

// ── updatePrices ──────────────────────────────────────────────────────────────

// UpdatePrices aplica un parche de precios sobre una lista en borrador y
// devuelve cuántos ítems fueron tocados. Ítems de unidad monetaria se omiten
// en silencio (nunca llevan precio propio); un price nil limpia el existente.
func (uc *UseCase) UpdatePrices(ctx context.Context, listID string, in dto.UpdatePricesRequest) (*dto.UpdatePricesResponse, error) {
	var updated int
	err := uc.txRunner.RunLists(ctx, func(
		listRepo repository.PurchaseListRepository,
		unitRepo repository.UnitRepository,
		_ repository.ProductRepository,
		_ repository.RestaurantRepository,
	) error {
		list, err := listRepo.GetByID(ctx, listID)
		if err != nil {
			return err
		}
		if list == nil {
			return domain.ErrNotFound
		}
		if list.IsFinal() {
			return domain.ErrListFinalized
		}
		updated, err = applyPriceUpdates(ctx, listRepo, unitRepo, list, in.Items, in.Observation)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.UpdatePricesResponse{UpdatedCount: updated}, nil
}

// applyPriceUpdates corre dentro de la transacción y comparte la lógica entre
// UpdatePrices y Complete.
func applyPriceUpdates(
	ctx context.Context,
	listRepo repository.PurchaseListRepository,
	unitRepo repository.UnitRepository,
	list *entity.PurchaseList,
	updates []dto.ItemPriceUpdate,
	observation *string,
) (int, error) {
	units := map[string]*entity.Unit{}
	updated := 0
	for _, u := range updates {
		item, err := listRepo.GetItem(ctx, u.ItemID)
		if err != nil {
			return updated, err
		}
		if item == nil || item.ListID != list.ID {
			return updated, domain.ErrNotFound
		}
		unit, ok := units[item.UnitID]
		if !ok {
			unit, err = unitRepo.GetByID(ctx, item.UnitID)
			if err != nil {
				return updated, err
			}
			units[item.UnitID] = unit
		}
		if unit != nil && unit.IsCurrency {
			continue // la cantidad ya es el importe; no se parcha precio
		}
		price, err := purchase.ParsePrice(u.Price)
		if err != nil {
			return updated, err
		}
		if err := listRepo.UpdateItemPrice(ctx, item.ID, price); err != nil {
			return updated, err
		}
		updated++
	}
	if observation != nil {
		if err := listRepo.UpdateObservation(ctx, list.ID, *observation); err != nil {
			return updated, err
		}
	}
	return updated, nil
}

// ── ensureComplete ────────────────────────────────────────────────────────────

// EnsureComplete valida (sin mutar nada) que todos los ítems no monetarios de
// la lista tengan precio. Devuelve IncompletePricingError con hasta 10 nombres
// de producto si falta alguno.
func (uc *UseCase) EnsureComplete(ctx context.Context, listID string) error {
	return ensureComplete(ctx, uc.listRepo, uc.unitRepo, uc.productRepo, listID)
}

func ensureComplete(
	ctx context.Context,
	listRepo repository.PurchaseListRepository,
	unitRepo repository.UnitRepository,
	productRepo repository.ProductRepository,
	listID string,
) error {
	items, err := listRepo.ItemsByList(ctx, listID)
	if err != nil {
		return err
	}
	units := map[string]*entity.Unit{}
	var missing []string
	for _, item := range items {
		unit, ok := units[item.UnitID]
		if !ok {
			unit, err = unitRepo.GetByID(ctx, item.UnitID)
			if err != nil {
				return err
			}
			units[item.UnitID] = unit
		}
		if unit != nil && unit.IsCurrency {
			continue
		}
		if item.PriceSoles != nil {
			continue
		}
		name := item.ProductID
		if product, err := productRepo.GetByID(ctx, item.ProductID); err == nil && product != nil {
			name = product.Name
		}
		missing = append(missing, name)
	}
	if len(missing) > 0 {
		return domain.NewIncompletePricingError(missing)
	}
	return nil
}

// ── finalize ──────────────────────────────────────────────────────────────────

// Finalize cierra la lista: valida completitud, reserva el correlativo bajo
// bloqueo y confirma series_code + status + finalized_at atómicamente.
// Repetir la llamada sobre una lista final devuelve ErrAlreadyFinalized sin
// tocar series_code ni finalized_at.
func (uc *UseCase) Finalize(ctx context.Context, listID string) (*dto.FinalizeResponse, error) {
	var out *dto.FinalizeResponse
	err := uc.txRunner.RunLists(ctx, func(
		listRepo repository.PurchaseListRepository,
		unitRepo repository.UnitRepository,
		productRepo repository.ProductRepository,
		restaurantRepo repository.RestaurantRepository,
	) error {
		list, err := listRepo.GetByID(ctx, listID)
		if err != nil {
			return err
		}
		if list == nil {
			return domain.ErrNotFound
		}
		if list.IsFinal() {
			return domain.ErrAlreadyFinalized
		}
		if err := ensureComplete(ctx, listRepo, unitRepo, productRepo, listID); err != nil {
			return err
		}
		out, err = finalizeLocked(ctx, listRepo, restaurantRepo, list, uc.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// finalizeLocked reserva el correlativo y confirma la finalización. Corre
// dentro de la transacción, con la lista ya validada como completa.
func finalizeLocked(
	ctx context.Context,
	listRepo repository.PurchaseListRepository,
	restaurantRepo repository.RestaurantRepository,
	list *entity.PurchaseList,
	now time.Time,
) (*dto.FinalizeResponse, error) {
	code := list.SeriesCode
	if code == "" {
		restaurant, err := restaurantRepo.GetByID(ctx, list.RestaurantID)
		if err != nil {
			return nil, err
		}
		if restaurant == nil {
			return nil, domain.ErrNotFound
		}
		seq, err := listRepo.ReserveSeriesSequence(ctx, restaurant.ID, now.Year())
		if err != nil {
			return nil, err
		}
		code = SeriesCode(now.Year(), restaurant.Code, seq)
	}
	// Una colisión de series_code viola la unicidad en el commit y sube como
	// ErrIntegrityConflict; el llamador puede reintentar, aquí no.
	if err := listRepo.MarkFinal(ctx, list.ID, code, now); err != nil {
		return nil, err
	}
	return &dto.FinalizeResponse{SeriesCode: code, FinalizedAt: now}, nil
}

// ── complete ──────────────────────────────────────────────────────────────────

// Complete aplica el parche de precios y, si la lista quedó completa, la
// finaliza en la misma transacción. Si aún faltan precios devuelve un
// resultado parcial (Finalized=false) con el avance: NO es un error.
func (uc *UseCase) Complete(ctx context.Context, listID string, in dto.CompleteRequest) (*dto.CompleteResponse, error) {
	out := &dto.CompleteResponse{}
	err := uc.txRunner.RunLists(ctx, func(
		listRepo repository.PurchaseListRepository,
		unitRepo repository.UnitRepository,
		productRepo repository.ProductRepository,
		restaurantRepo repository.RestaurantRepository,
	) error {
		list, err := listRepo.GetByID(ctx, listID)
		if err != nil {
			return err
		}
		if list == nil {
			return domain.ErrNotFound
		}
		if list.IsFinal() {
			return domain.ErrListFinalized
		}
		out.UpdatedCount, err = applyPriceUpdates(ctx, listRepo, unitRepo, list, in.Items, in.Observation)
		if err != nil {
			return err
		}
		if err := ensureComplete(ctx, listRepo, unitRepo, productRepo, listID); err != nil {
			var incomplete *domain.IncompletePricingError
			if errors.As(err, &incomplete) {
				// Respuesta terminal válida: se confirma el parche aplicado
				// y se reporta qué sigue sin precio.
				out.Finalized = false
				out.MissingProducts = incomplete.Products
				return nil
			}
			return err
		}
		fin, err := finalizeLocked(ctx, listRepo, restaurantRepo, list, uc.now())
		if err != nil {
			return err
		}
		out.Finalized = true
		out.SeriesCode = fin.SeriesCode
		out.FinalizedAt = &fin.FinalizedAt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ── renderizado ───────────────────────────────────────────────────────────────

// Renderable arma la vista imprimible de una lista: líneas con etiqueta de
// unidad, subtotal por línea y total acumulado con re-redondeo por suma.
func (uc *UseCase) Renderable(ctx context.Context, listID string) (*dto.RenderableList, error) {
	list, err := uc.listRepo.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, domain.ErrNotFound
	}
	restaurant, err := uc.restaurantRepo.GetByID(ctx, list.RestaurantID)
	if err != nil {
		return nil, err
	}
	items, err := uc.listRepo.ItemsByList(ctx, listID)
	if err != nil {
		return nil, err
	}

	out := &dto.RenderableList{
		SeriesCode:  list.SeriesCode,
		Status:      list.Status,
		Notes:       list.Notes,
		CreatedAt:   list.CreatedAt,
		FinalizedAt: list.FinalizedAt,
		Lines:       make([]dto.RenderableLine, 0, len(items)),
		Total:       decimal.Zero,
	}
	if restaurant != nil {
		out.Restaurant = restaurant.Name
	}

	units := map[string]*entity.Unit{}
	for _, item := range items {
		unit, ok := units[item.UnitID]
		if !ok {
			unit, err = uc.unitRepo.GetByID(ctx, item.UnitID)
			if err != nil {
				return nil, err
			}
			units[item.UnitID] = unit
		}
		productName := item.ProductID
		if product, err := uc.productRepo.GetByID(ctx, item.ProductID); err == nil && product != nil {
			productName = product.Name
		}
		subtotal := purchase.ItemSubtotal(item, unit)
		out.Lines = append(out.Lines, dto.RenderableLine{
			Product:    productName,
			UnitLabel:  unit.Label(),
			Qty:        item.Qty,
			Price:      item.PriceSoles,
			Subtotal:   subtotal,
			IsCurrency: unit != nil && unit.IsCurrency,
		})
		out.Total = purchase.Round2(out.Total.Add(subtotal))
	}
	return out, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (uc *UseCase) toListResponse(ctx context.Context, list *entity.PurchaseList, items []*entity.PurchaseListItem) *dto.ListResponse {
	resp := &dto.ListResponse{
		ID:           list.ID,
		RestaurantID: list.RestaurantID,
		SeriesCode:   list.SeriesCode,
		Status:       list.Status,
		Notes:        list.Notes,
		Observation:  list.Observation,
		CreatedAt:    list.CreatedAt,
		FinalizedAt:  list.FinalizedAt,
		Items:        make([]dto.ListItemResponse, 0, len(items)),
	}
	units := map[string]*entity.Unit{}
	for _, item := range items {
		unit, ok := units[item.UnitID]
		if !ok {
			unit, _ = uc.unitRepo.GetByID(ctx, item.UnitID)
			units[item.UnitID] = unit
		}
		product, _ := uc.productRepo.GetByID(ctx, item.ProductID)
		resp.Items = append(resp.Items, toItemResponse(item, product, unit))
	}
	return resp
}

func toItemResponse(item *entity.PurchaseListItem, product *entity.Product, unit *entity.Unit) dto.ListItemResponse {
	resp := dto.ListItemResponse{
		ID:         item.ID,
		ListID:     item.ListID,
		ProductID:  item.ProductID,
		UnitID:     item.UnitID,
		Qty:        item.Qty,
		PriceSoles: item.PriceSoles,
	}
	if product != nil {
		resp.ProductName = product.Name
	}
	if unit != nil {
		resp.UnitName = unit.Name
		resp.UnitIsCurrency = unit.IsCurrency
	}
	return resp
}
