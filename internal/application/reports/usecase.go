// Package reports implementa el motor de reportes por rango de fechas:
// agrupa ítems de listas por restaurante → categoría (→ líneas), arma el
// desglose cronológico y el total general, todo con redondeo monetario
// consistente. Es lectura pura sobre un snapshot: nunca escribe.
package reports

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/purchase"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// Request parámetros ya tipados del reporte (el borde HTTP parsea fechas y CSV).
type Request struct {
	OwnerID   string
	Start     time.Time
	End       time.Time
	OnlyFinal bool
	Mode      string // detail | summary (vacío = detail)
	Filters   dto.ReportFilters
}

// UseCase motor de reportes de compras.
type UseCase struct {
	repo repository.ReportRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ReportRepository) *UseCase {
	return &UseCase{repo: repo}
}

// BuildReport arma el reporte del rango. Un rango invertido se corrige
// (start > end se intercambian, nunca es error). El rango es inclusivo y se
// aplica sobre la fecha de creación de la lista.
func (uc *UseCase) BuildReport(ctx context.Context, in Request) (*dto.ReportResponse, error) {
	start, end := in.Start, in.End
	if start.After(end) {
		start, end = end, start
	}
	mode := in.Mode
	if mode == "" {
		mode = dto.ReportModeDetail
	}

	rows, err := uc.repo.ItemRows(ctx, repository.ReportQuery{
		OwnerID:   in.OwnerID,
		Start:     start,
		End:       end,
		OnlyFinal: in.OnlyFinal,
	})
	if err != nil {
		return nil, err
	}
	rows = applyFilters(rows, in.Filters)

	out := &dto.ReportResponse{
		Mode:        mode,
		Start:       start.Format(dateLayout),
		End:         end.Format(dateLayout),
		OnlyFinal:   in.OnlyFinal,
		GrandTotal:  decimal.Zero,
		Restaurants: []dto.ReportRestaurant{},
		Dates:       []dto.ReportDate{},
	}

	type categoryAgg struct {
		total decimal.Decimal
		lines []dto.ReportLine
	}
	type restaurantAgg struct {
		total      decimal.Decimal
		categories map[string]*categoryAgg
	}
	type dateAgg struct {
		lists map[string]struct{}
		total decimal.Decimal
	}

	restaurants := map[string]*restaurantAgg{}
	dates := map[string]*dateAgg{}

	for _, row := range rows {
		subtotal := purchase.Subtotal(row.Qty, row.PriceSoles, row.UnitIsCurrency)

		rest, ok := restaurants[row.RestaurantName]
		if !ok {
			rest = &restaurantAgg{total: decimal.Zero, categories: map[string]*categoryAgg{}}
			restaurants[row.RestaurantName] = rest
		}
		cat, ok := rest.categories[row.CategoryName]
		if !ok {
			cat = &categoryAgg{total: decimal.Zero}
			rest.categories[row.CategoryName] = cat
		}

		day := row.ListCreatedAt.Format(dateLayout)
		date, ok := dates[day]
		if !ok {
			date = &dateAgg{lists: map[string]struct{}{}, total: decimal.Zero}
			dates[day] = date
		}

		// Cada suma se re-redondea: los totales derivados son sumas de
		// subtotales ya redondeados, vueltas a redondear tras cada acumulación.
		cat.total = purchase.Round2(cat.total.Add(subtotal))
		rest.total = purchase.Round2(rest.total.Add(subtotal))
		date.total = purchase.Round2(date.total.Add(subtotal))
		out.GrandTotal = purchase.Round2(out.GrandTotal.Add(subtotal))
		date.lists[row.ListID] = struct{}{}

		if mode == dto.ReportModeDetail {
			unitLabel := row.UnitSymbol
			if unitLabel == "" {
				unitLabel = row.UnitName
			}
			if unitLabel == "" {
				unitLabel = "—"
			}
			cat.lines = append(cat.lines, dto.ReportLine{
				Date:           day,
				Product:        row.ProductName,
				Unit:           unitLabel,
				Qty:            row.Qty,
				Price:          row.PriceSoles,
				Subtotal:       subtotal,
				UnitIsCurrency: row.UnitIsCurrency,
			})
		}
	}

	// Restaurantes y categorías en orden alfabético; líneas en orden de
	// acumulación; fechas cronológicas.
	restNames := make([]string, 0, len(restaurants))
	for name := range restaurants {
		restNames = append(restNames, name)
	}
	sort.Strings(restNames)
	for _, name := range restNames {
		rest := restaurants[name]
		catNames := make([]string, 0, len(rest.categories))
		for cn := range rest.categories {
			catNames = append(catNames, cn)
		}
		sort.Strings(catNames)
		group := dto.ReportRestaurant{
			Restaurant: name,
			Total:      rest.total,
			Categories: make([]dto.ReportCategory, 0, len(catNames)),
		}
		for _, cn := range catNames {
			cat := rest.categories[cn]
			group.Categories = append(group.Categories, dto.ReportCategory{
				Category: cn,
				Total:    cat.total,
				Lines:    cat.lines,
			})
		}
		out.Restaurants = append(out.Restaurants, group)
	}

	days := make([]string, 0, len(dates))
	for day := range dates {
		days = append(days, day)
	}
	sort.Strings(days) // formato ISO: el orden lexicográfico es cronológico
	for _, day := range days {
		date := dates[day]
		out.Dates = append(out.Dates, dto.ReportDate{
			Date:  day,
			Lists: len(date.lists),
			Total: date.total,
		})
	}

	return out, nil
}

// applyFilters restringe las filas por categoría y producto. Para cada
// dimensión, los filtros por ID tienen precedencia sobre los de nombre.
func applyFilters(rows []repository.ReportItemRow, f dto.ReportFilters) []repository.ReportItemRow {
	categoryKey, categorySet := filterSet(f.CategoryIDs, f.CategoryNames)
	productKey, productSet := filterSet(f.ProductIDs, f.ProductNames)
	if categorySet == nil && productSet == nil {
		return rows
	}

	out := rows[:0:0]
	for _, row := range rows {
		if categorySet != nil {
			key := row.CategoryID
			if categoryKey == byName {
				key = row.CategoryName
			}
			if _, ok := categorySet[key]; !ok {
				continue
			}
		}
		if productSet != nil {
			key := row.ProductID
			if productKey == byName {
				key = row.ProductName
			}
			if _, ok := productSet[key]; !ok {
				continue
			}
		}
		out = append(out, row)
	}
	return out
}

type filterKey int

const (
	byID filterKey = iota
	byName
)

// filterSet arma el set de valores aceptados de una dimensión: IDs si hay,
// si no nombres, si no nil (sin filtro).
func filterSet(ids, names []string) (filterKey, map[string]struct{}) {
	if len(ids) > 0 {
		return byID, toSet(ids)
	}
	if len(names) > 0 {
		return byName, toSet(names)
	}
	return byID, nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
