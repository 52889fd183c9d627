package purchase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/purchase"
)

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

// ──────────────────────────────────────────────────────────────────────────────
// Subtotal — la única autoridad de cálculo de línea del sistema.
// Moneda: subtotal = round2(qty). No moneda: subtotal = round2(qty × price),
// redondeando SOLO el producto final.
// ──────────────────────────────────────────────────────────────────────────────

// TestSubtotal_UnidadMonetaria_EsLaCantidad verifica que con unidad monetaria
// el subtotal es la cantidad redondeada, ignorando cualquier precio.
func TestSubtotal_UnidadMonetaria_EsLaCantidad(t *testing.T) {
	got := purchase.Subtotal(dec(t, "45.50"), decPtr(t, "99.99"), true)
	assert.True(t, dec(t, "45.50").Equal(got), "subtotal debe ser 45.50, fue %s", got)
}

// TestSubtotal_UnidadMonetaria_RedondeaHalfUp verifica el redondeo half-up
// del importe (45.505 → 45.51).
func TestSubtotal_UnidadMonetaria_RedondeaHalfUp(t *testing.T) {
	got := purchase.Subtotal(dec(t, "45.505"), nil, true)
	assert.True(t, dec(t, "45.51").Equal(got), "45.505 debe redondear a 45.51, fue %s", got)
}

// TestSubtotal_NoMonetaria_MultiplicaYRedondea verifica qty × price.
func TestSubtotal_NoMonetaria_MultiplicaYRedondea(t *testing.T) {
	got := purchase.Subtotal(dec(t, "3"), decPtr(t, "12.00"), false)
	assert.True(t, dec(t, "36.00").Equal(got))
}

// TestSubtotal_NoMonetaria_RedondeaSoloElProducto verifica que se multiplica a
// precisión completa y se redondea una sola vez: 1.005 × 3 = 3.015 → 3.02.
// Redondear los factores antes daría 1.01 × 3 = 3.03.
func TestSubtotal_NoMonetaria_RedondeaSoloElProducto(t *testing.T) {
	got := purchase.Subtotal(dec(t, "3"), decPtr(t, "1.005"), false)
	assert.True(t, dec(t, "3.02").Equal(got), "esperado 3.02, fue %s", got)
}

// TestSubtotal_PrecioNil_EsCero verifica el comportamiento defensivo: un ítem
// no monetario sin precio aporta 0, nunca un panic.
func TestSubtotal_PrecioNil_EsCero(t *testing.T) {
	got := purchase.Subtotal(dec(t, "7.5"), nil, false)
	assert.True(t, got.IsZero(), "sin precio el subtotal debe ser 0, fue %s", got)
}

// TestItemSubtotal_ResuelveLaReglaDesdeLaUnidad cubre el despacho por unidad.
func TestItemSubtotal_ResuelveLaReglaDesdeLaUnidad(t *testing.T) {
	soles := &entity.Unit{Name: "Soles", Symbol: "S/", IsCurrency: true}
	kilo := &entity.Unit{Name: "Kilogramo", Symbol: "kg"}

	itemMoneda := &entity.PurchaseListItem{Qty: dec(t, "45.50")}
	itemKilo := &entity.PurchaseListItem{Qty: dec(t, "3"), PriceSoles: decPtr(t, "12.00")}

	assert.True(t, dec(t, "45.50").Equal(purchase.ItemSubtotal(itemMoneda, soles)))
	assert.True(t, dec(t, "36.00").Equal(purchase.ItemSubtotal(itemKilo, kilo)))
}

// TestItemSubtotal_UnidadNil_NoRevienta: unidad no resuelta se trata como no
// monetaria (camino defensivo del renderizado).
func TestItemSubtotal_UnidadNil_NoRevienta(t *testing.T) {
	item := &entity.PurchaseListItem{Qty: dec(t, "2"), PriceSoles: decPtr(t, "5")}
	assert.True(t, dec(t, "10.00").Equal(purchase.ItemSubtotal(item, nil)))
}

// TestRound2_HalfUp casos borde del redondeo monetario.
func TestRound2_HalfUp(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1.004", "1.00"},
		{"1.005", "1.01"},
		{"1.015", "1.02"},
		{"0.999", "1.00"},
		{"81.50", "81.50"},
	}
	for _, c := range cases {
		got := purchase.Round2(dec(t, c.in))
		assert.True(t, dec(t, c.want).Equal(got), "round2(%s) esperado %s, fue %s", c.in, c.want, got)
	}
}

// TestUnitLabel_PreferenciaDeEtiqueta: símbolo, si no nombre, si no guion.
func TestUnitLabel_PreferenciaDeEtiqueta(t *testing.T) {
	assert.Equal(t, "kg", (&entity.Unit{Name: "Kilogramo", Symbol: "kg"}).Label())
	assert.Equal(t, "Kilogramo", (&entity.Unit{Name: "Kilogramo"}).Label())
	assert.Equal(t, "—", (&entity.Unit{}).Label())
	var nilUnit *entity.Unit
	assert.Equal(t, "—", nilUnit.Label())
}
