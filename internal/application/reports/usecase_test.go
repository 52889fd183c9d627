package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/reports"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// fakeReportRepo devuelve un snapshot fijo, capturando la query recibida.
type fakeReportRepo struct {
	rows []repository.ReportItemRow
	got  repository.ReportQuery
}

func (f *fakeReportRepo) ItemRows(_ context.Context, q repository.ReportQuery) ([]repository.ReportItemRow, error) {
	f.got = q
	return f.rows, nil
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func decPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := dec(t, s)
	return &d
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// sampleRows dos restaurantes, dos categorías y dos días:
//
//	La Alpaca  / Verduras / Tomate  3 kg × 12.00 = 36.00  (08-01, lista l1)
//	La Alpaca  / Otros    / Gas     45.50 S/     = 45.50  (08-01, lista l1)
//	Milagritos / Verduras / Cebolla 2 kg × 4.25  = 8.50   (08-02, lista l2)
func sampleRows(t *testing.T) []repository.ReportItemRow {
	t.Helper()
	return []repository.ReportItemRow{
		{
			ListID: "l1", ListCreatedAt: day(t, "2025-08-01"),
			RestaurantName: "La Alpaca",
			CategoryID:     "c-verduras", CategoryName: "Verduras",
			ProductID: "p-tomate", ProductName: "Tomate",
			UnitName: "Kilogramo", UnitSymbol: "kg",
			Qty: dec(t, "3"), PriceSoles: decPtr(t, "12.00"),
		},
		{
			ListID: "l1", ListCreatedAt: day(t, "2025-08-01"),
			RestaurantName: "La Alpaca",
			CategoryID:     "c-otros", CategoryName: "Otros",
			ProductID: "p-gas", ProductName: "Balón de gas",
			UnitName: "Soles", UnitSymbol: "S/", UnitIsCurrency: true,
			Qty: dec(t, "45.50"),
		},
		{
			ListID: "l2", ListCreatedAt: day(t, "2025-08-02"),
			RestaurantName: "Milagritos",
			CategoryID:     "c-verduras", CategoryName: "Verduras",
			ProductID: "p-cebolla", ProductName: "Cebolla",
			UnitName: "Kilogramo", UnitSymbol: "kg",
			Qty: dec(t, "2"), PriceSoles: decPtr(t, "4.25"),
		},
	}
}

func build(t *testing.T, repo *fakeReportRepo, in reports.Request) *dto.ReportResponse {
	t.Helper()
	out, err := reports.NewUseCase(repo).BuildReport(context.Background(), in)
	require.NoError(t, err)
	return out
}

func TestBuildReport_AgrupaYOrdena(t *testing.T) {
	repo := &fakeReportRepo{rows: sampleRows(t)}
	out := build(t, repo, reports.Request{
		OwnerID: "owner-1",
		Start:   day(t, "2025-08-01"),
		End:     day(t, "2025-08-31"),
	})

	assert.Equal(t, dto.ReportModeDetail, out.Mode, "sin modo explícito aplica detail")
	assert.Equal(t, "90", out.GrandTotal.String())

	// Restaurantes en orden alfabético.
	require.Len(t, out.Restaurants, 2)
	assert.Equal(t, "La Alpaca", out.Restaurants[0].Restaurant)
	assert.Equal(t, "Milagritos", out.Restaurants[1].Restaurant)
	assert.Equal(t, "81.5", out.Restaurants[0].Total.String())
	assert.Equal(t, "8.5", out.Restaurants[1].Total.String())

	// Categorías también alfabéticas dentro del restaurante.
	alpaca := out.Restaurants[0]
	require.Len(t, alpaca.Categories, 2)
	assert.Equal(t, "Otros", alpaca.Categories[0].Category)
	assert.Equal(t, "Verduras", alpaca.Categories[1].Category)
	assert.Equal(t, "45.5", alpaca.Categories[0].Total.String())
	assert.Equal(t, "36", alpaca.Categories[1].Total.String())

	// Líneas de detalle: unidad con símbolo, subtotal ya redondeado.
	require.Len(t, alpaca.Categories[0].Lines, 1)
	gas := alpaca.Categories[0].Lines[0]
	assert.Equal(t, "S/", gas.Unit)
	assert.True(t, gas.UnitIsCurrency)
	assert.Equal(t, "45.5", gas.Subtotal.String())
	assert.Nil(t, gas.Price)
}

func TestBuildReport_TotalesCuadran(t *testing.T) {
	repo := &fakeReportRepo{rows: sampleRows(t)}
	out := build(t, repo, reports.Request{
		Start: day(t, "2025-08-01"), End: day(t, "2025-08-31"),
	})

	// Líneas → categoría → restaurante → total general.
	sum := decimal.Zero
	for _, rest := range out.Restaurants {
		restSum := decimal.Zero
		for _, cat := range rest.Categories {
			catSum := decimal.Zero
			for _, line := range cat.Lines {
				catSum = catSum.Add(line.Subtotal)
			}
			assert.True(t, catSum.Equal(cat.Total), "categoría %s", cat.Category)
			restSum = restSum.Add(cat.Total)
		}
		assert.True(t, restSum.Equal(rest.Total), "restaurante %s", rest.Restaurant)
		sum = sum.Add(rest.Total)
	}
	assert.True(t, sum.Equal(out.GrandTotal))

	// El desglose por fecha suma al mismo total general.
	dateSum := decimal.Zero
	for _, d := range out.Dates {
		dateSum = dateSum.Add(d.Total)
	}
	assert.True(t, dateSum.Equal(out.GrandTotal))
}

func TestBuildReport_DesglosePorFecha(t *testing.T) {
	repo := &fakeReportRepo{rows: sampleRows(t)}
	out := build(t, repo, reports.Request{
		Start: day(t, "2025-08-01"), End: day(t, "2025-08-31"),
	})

	require.Len(t, out.Dates, 2)
	assert.Equal(t, "2025-08-01", out.Dates[0].Date)
	assert.Equal(t, 1, out.Dates[0].Lists, "l1 cuenta una sola vez con dos ítems")
	assert.Equal(t, "81.5", out.Dates[0].Total.String())
	assert.Equal(t, "2025-08-02", out.Dates[1].Date)
	assert.Equal(t, 1, out.Dates[1].Lists)
	assert.Equal(t, "8.5", out.Dates[1].Total.String())
}

func TestBuildReport_RangoInvertido_SeCorrige(t *testing.T) {
	repo := &fakeReportRepo{rows: nil}
	out := build(t, repo, reports.Request{
		Start: day(t, "2025-08-31"), End: day(t, "2025-08-01"),
	})

	assert.Equal(t, "2025-08-01", out.Start)
	assert.Equal(t, "2025-08-31", out.End)
	assert.True(t, repo.got.Start.Before(repo.got.End), "la query va con el rango ya corregido")
}

func TestBuildReport_ModoResumen_SinLineas(t *testing.T) {
	repo := &fakeReportRepo{rows: sampleRows(t)}
	out := build(t, repo, reports.Request{
		Start: day(t, "2025-08-01"), End: day(t, "2025-08-31"),
		Mode: dto.ReportModeSummary,
	})

	assert.Equal(t, dto.ReportModeSummary, out.Mode)
	assert.Equal(t, "90", out.GrandTotal.String())
	for _, rest := range out.Restaurants {
		for _, cat := range rest.Categories {
			assert.Empty(t, cat.Lines)
		}
	}
}

func TestBuildReport_FiltroPorCategoria(t *testing.T) {
	repo := &fakeReportRepo{rows: sampleRows(t)}
	out := build(t, repo, reports.Request{
		Start: day(t, "2025-08-01"), End: day(t, "2025-08-31"),
		Filters: dto.ReportFilters{CategoryNames: []string{"Verduras"}},
	})

	assert.Equal(t, "44.5", out.GrandTotal.String())
	for _, rest := range out.Restaurants {
		require.Len(t, rest.Categories, 1)
		assert.Equal(t, "Verduras", rest.Categories[0].Category)
	}
}

// TestBuildReport_IDsGananANombres: cuando una dimensión trae IDs y nombres,
// los nombres se ignoran por completo.
func TestBuildReport_IDsGananANombres(t *testing.T) {
	repo := &fakeReportRepo{rows: sampleRows(t)}
	out := build(t, repo, reports.Request{
		Start: day(t, "2025-08-01"), End: day(t, "2025-08-31"),
		Filters: dto.ReportFilters{
			CategoryIDs:   []string{"c-otros"},
			CategoryNames: []string{"Verduras"}, // ignorado
		},
	})

	assert.Equal(t, "45.5", out.GrandTotal.String())
	require.Len(t, out.Restaurants, 1)
	require.Len(t, out.Restaurants[0].Categories, 1)
	assert.Equal(t, "Otros", out.Restaurants[0].Categories[0].Category)
}

func TestBuildReport_FiltroPorProducto(t *testing.T) {
	repo := &fakeReportRepo{rows: sampleRows(t)}
	out := build(t, repo, reports.Request{
		Start: day(t, "2025-08-01"), End: day(t, "2025-08-31"),
		Filters: dto.ReportFilters{ProductIDs: []string{"p-cebolla"}},
	})

	assert.Equal(t, "8.5", out.GrandTotal.String())
	require.Len(t, out.Restaurants, 1)
	assert.Equal(t, "Milagritos", out.Restaurants[0].Restaurant)
}

func TestBuildReport_RangoVacio(t *testing.T) {
	repo := &fakeReportRepo{rows: nil}
	out := build(t, repo, reports.Request{
		Start: day(t, "2025-08-01"), End: day(t, "2025-08-31"),
	})

	assert.True(t, out.GrandTotal.IsZero())
	assert.Empty(t, out.Restaurants)
	assert.Empty(t, out.Dates)
}

func TestBuildReport_UnidadSinSimboloNiNombre(t *testing.T) {
	rows := []repository.ReportItemRow{{
		ListID: "l1", ListCreatedAt: day(t, "2025-08-01"),
		RestaurantName: "La Alpaca",
		CategoryID:     "c-otros", CategoryName: "Otros",
		ProductID: "p-gas", ProductName: "Balón de gas",
		Qty: dec(t, "1"), PriceSoles: decPtr(t, "10.00"),
	}}
	repo := &fakeReportRepo{rows: rows}
	out := build(t, repo, reports.Request{
		Start: day(t, "2025-08-01"), End: day(t, "2025-08-31"),
	})

	require.Len(t, out.Restaurants, 1)
	require.Len(t, out.Restaurants[0].Categories, 1)
	require.Len(t, out.Restaurants[0].Categories[0].Lines, 1)
	assert.Equal(t, "—", out.Restaurants[0].Categories[0].Lines[0].Unit)
}
