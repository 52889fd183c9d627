package lists_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests del caso de uso. Replican los
// contratos de los puertos (incluida la reserva de correlativo y la unicidad
// del series_code) sin tocar PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	lists       map[string]*entity.PurchaseList
	items       map[string]*entity.PurchaseListItem
	itemOrder   []string
	units       map[string]*entity.Unit
	products    map[string]*entity.Product
	restaurants map[string]*entity.Restaurant
}

func newMemStore() *memStore {
	return &memStore{
		lists:       map[string]*entity.PurchaseList{},
		items:       map[string]*entity.PurchaseListItem{},
		units:       map[string]*entity.Unit{},
		products:    map[string]*entity.Product{},
		restaurants: map[string]*entity.Restaurant{},
	}
}

// ── PurchaseListRepository ────────────────────────────────────────────────────

type memListRepo struct{ s *memStore }

func (r *memListRepo) Create(_ context.Context, list *entity.PurchaseList) error {
	cp := *list
	r.s.lists[list.ID] = &cp
	return nil
}

func (r *memListRepo) GetByID(_ context.Context, id string) (*entity.PurchaseList, error) {
	list, ok := r.s.lists[id]
	if !ok {
		return nil, nil
	}
	cp := *list
	return &cp, nil
}

func (r *memListRepo) ListByOwner(_ context.Context, ownerID string, f repository.ListFilter) ([]*entity.PurchaseList, error) {
	var out []*entity.PurchaseList
	for _, l := range r.s.lists {
		if l.OwnerID != ownerID {
			continue
		}
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if f.RestaurantID != "" && l.RestaurantID != f.RestaurantID {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memListRepo) UpdateObservation(_ context.Context, listID, observation string) error {
	list, ok := r.s.lists[listID]
	if !ok {
		return domain.ErrNotFound
	}
	list.Observation = observation
	return nil
}

func (r *memListRepo) MarkFinal(_ context.Context, listID, seriesCode string, finalizedAt time.Time) error {
	for id, other := range r.s.lists {
		if id != listID && other.SeriesCode == seriesCode {
			return domain.ErrIntegrityConflict
		}
	}
	list, ok := r.s.lists[listID]
	if !ok {
		return domain.ErrNotFound
	}
	list.SeriesCode = seriesCode
	list.Status = entity.ListStatusFinal
	at := finalizedAt
	list.FinalizedAt = &at
	return nil
}

func (r *memListRepo) Delete(_ context.Context, id string) error {
	delete(r.s.lists, id)
	var keep []string
	for _, itemID := range r.s.itemOrder {
		if r.s.items[itemID].ListID == id {
			delete(r.s.items, itemID)
			continue
		}
		keep = append(keep, itemID)
	}
	r.s.itemOrder = keep
	return nil
}

func (r *memListRepo) CreateItem(_ context.Context, item *entity.PurchaseListItem) error {
	cp := *item
	r.s.items[item.ID] = &cp
	r.s.itemOrder = append(r.s.itemOrder, item.ID)
	return nil
}

func (r *memListRepo) GetItem(_ context.Context, itemID string) (*entity.PurchaseListItem, error) {
	item, ok := r.s.items[itemID]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *memListRepo) ItemsByList(_ context.Context, listID string) ([]*entity.PurchaseListItem, error) {
	var out []*entity.PurchaseListItem
	for _, itemID := range r.s.itemOrder {
		item := r.s.items[itemID]
		if item.ListID == listID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memListRepo) UpdateItemPrice(_ context.Context, itemID string, price *decimal.Decimal) error {
	item, ok := r.s.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	if price == nil {
		item.PriceSoles = nil
		return nil
	}
	cp := *price
	item.PriceSoles = &cp
	return nil
}

func (r *memListRepo) ReserveSeriesSequence(_ context.Context, restaurantID string, year int) (int, error) {
	count := 0
	for _, l := range r.s.lists {
		if l.RestaurantID == restaurantID && l.Status == entity.ListStatusFinal &&
			l.FinalizedAt != nil && l.FinalizedAt.Year() == year {
			count++
		}
	}
	return count + 1, nil
}

// ── Repos de catálogo ─────────────────────────────────────────────────────────

type memUnitRepo struct{ s *memStore }

func (r *memUnitRepo) Create(_ context.Context, u *entity.Unit) error { r.s.units[u.ID] = u; return nil }
func (r *memUnitRepo) GetByID(_ context.Context, id string) (*entity.Unit, error) {
	return r.s.units[id], nil
}
func (r *memUnitRepo) GetByName(_ context.Context, ownerID, name string) (*entity.Unit, error) {
	for _, u := range r.s.units {
		if u.OwnerID == ownerID && u.Name == name {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUnitRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, u := range r.s.units {
		if u.OwnerID == ownerID {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *memUnitRepo) Update(_ context.Context, u *entity.Unit) error { r.s.units[u.ID] = u; return nil }
func (r *memUnitRepo) Delete(_ context.Context, id string) error      { delete(r.s.units, id); return nil }

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}
func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *memProductRepo) GetByNameAndCategory(_ context.Context, ownerID, name, categoryID string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.OwnerID == ownerID && p.Name == name && p.CategoryID == categoryID {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) ListByOwner(_ context.Context, ownerID string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}
func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.s.products, id)
	return nil
}

type memRestaurantRepo struct{ s *memStore }

func (r *memRestaurantRepo) Create(_ context.Context, re *entity.Restaurant) error {
	r.s.restaurants[re.ID] = re
	return nil
}
func (r *memRestaurantRepo) GetByID(_ context.Context, id string) (*entity.Restaurant, error) {
	return r.s.restaurants[id], nil
}
func (r *memRestaurantRepo) GetByCode(_ context.Context, ownerID, code string) (*entity.Restaurant, error) {
	for _, re := range r.s.restaurants {
		if re.OwnerID == ownerID && re.Code == code {
			return re, nil
		}
	}
	return nil, nil
}
func (r *memRestaurantRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Restaurant, error) {
	var out []*entity.Restaurant
	for _, re := range r.s.restaurants {
		if re.OwnerID == ownerID {
			out = append(out, re)
		}
	}
	return out, nil
}
func (r *memRestaurantRepo) Update(_ context.Context, re *entity.Restaurant) error {
	r.s.restaurants[re.ID] = re
	return nil
}
func (r *memRestaurantRepo) Delete(_ context.Context, id string) error {
	delete(r.s.restaurants, id)
	return nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) RunLists(_ context.Context, fn func(
	listRepo repository.PurchaseListRepository,
	unitRepo repository.UnitRepository,
	productRepo repository.ProductRepository,
	restaurantRepo repository.RestaurantRepository,
) error) error {
	return fn(&memListRepo{t.s}, &memUnitRepo{t.s}, &memProductRepo{t.s}, &memRestaurantRepo{t.s})
}
