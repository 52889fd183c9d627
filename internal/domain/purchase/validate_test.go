package purchase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/purchase"
)

const testOwner = "owner-1"

func strPtr(s string) *string { return &s }

func draftList() *entity.PurchaseList {
	return &entity.PurchaseList{ID: "list-1", OwnerID: testOwner, Status: entity.ListStatusDraft}
}

func finalList() *entity.PurchaseList {
	return &entity.PurchaseList{ID: "list-2", OwnerID: testOwner, Status: entity.ListStatusFinal}
}

func currencyUnit() *entity.Unit {
	return &entity.Unit{ID: "u-soles", OwnerID: testOwner, Name: "Soles", Kind: entity.UnitKindCurrency, Symbol: "S/", IsCurrency: true}
}

func kiloUnit() *entity.Unit {
	return &entity.Unit{ID: "u-kg", OwnerID: testOwner, Name: "Kilogramo", Kind: entity.UnitKindMass, Symbol: "kg"}
}

func testProduct() *entity.Product {
	return &entity.Product{ID: "p-1", OwnerID: testOwner, Name: "Tomate", CategoryID: "c-1"}
}

// ── Regla 1: inmutabilidad de listas finalizadas ──────────────────────────────

func TestValidate_ListaFinal_Rechaza(t *testing.T) {
	_, err := purchase.Validate(
		purchase.Candidate{Qty: strPtr("1")},
		kiloUnit(), testProduct(), finalList(), false,
	)
	assert.ErrorIs(t, err, domain.ErrListFinalized)
}

// ── Regla 2: cantidad obligatoria, numérica y no negativa ─────────────────────

func TestValidate_CantidadInvalida(t *testing.T) {
	cases := []struct {
		name string
		qty  *string
	}{
		{"nil", nil},
		{"vacía", strPtr("")},
		{"no numérica", strPtr("abc")},
		{"negativa", strPtr("-1.5")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := purchase.Validate(
				purchase.Candidate{Qty: c.qty},
				kiloUnit(), testProduct(), draftList(), false,
			)
			assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		})
	}
}

// ── Regla 3: unidad monetaria fuerza price a nil sin error ────────────────────

// TestValidate_UnidadMonetaria_AnulaPrecio: aunque el cliente mande un precio
// (incluso uno mal formado), con unidad monetaria se descarta en silencio.
func TestValidate_UnidadMonetaria_AnulaPrecio(t *testing.T) {
	out, err := purchase.Validate(
		purchase.Candidate{Qty: strPtr("45.50"), Price: strPtr("99.99")},
		currencyUnit(), testProduct(), draftList(), false,
	)
	require.NoError(t, err)
	assert.Nil(t, out.Price, "price debe normalizarse a nil para unidad monetaria")
	assert.Equal(t, "45.5", out.Qty.String())

	// Un precio no parseable tampoco es error: la regla 3 precede a la 5.
	out, err = purchase.Validate(
		purchase.Candidate{Qty: strPtr("10"), Price: strPtr("no-numérico")},
		currencyUnit(), testProduct(), draftList(), true,
	)
	require.NoError(t, err)
	assert.Nil(t, out.Price)
}

// ── Regla 4: precio diferible en borrador, obligatorio al finalizar ───────────

func TestValidate_NoMonetaria_PrecioDiferibleEnBorrador(t *testing.T) {
	out, err := purchase.Validate(
		purchase.Candidate{Qty: strPtr("3")},
		kiloUnit(), testProduct(), draftList(), false,
	)
	require.NoError(t, err)
	assert.Nil(t, out.Price)
}

func TestValidate_NoMonetaria_PrecioObligatorioAlFinalizar(t *testing.T) {
	_, err := purchase.Validate(
		purchase.Candidate{Qty: strPtr("3")},
		kiloUnit(), testProduct(), draftList(), true,
	)
	assert.ErrorIs(t, err, domain.ErrMissingPrice)
}

// ── Regla 5: precio presente debe ser un decimal válido ───────────────────────

func TestValidate_PrecioNoNumerico_Rechaza(t *testing.T) {
	_, err := purchase.Validate(
		purchase.Candidate{Qty: strPtr("3"), Price: strPtr("doce")},
		kiloUnit(), testProduct(), draftList(), false,
	)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestValidate_PrecioNegativo_Rechaza(t *testing.T) {
	_, err := purchase.Validate(
		purchase.Candidate{Qty: strPtr("3"), Price: strPtr("-12.00")},
		kiloUnit(), testProduct(), draftList(), false,
	)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

// ── Alcance: unidad y producto deben ser del mismo propietario ────────────────

func TestValidate_UnidadDeOtroPropietario_Rechaza(t *testing.T) {
	otra := kiloUnit()
	otra.OwnerID = "otro-owner"
	_, err := purchase.Validate(
		purchase.Candidate{Qty: strPtr("1")},
		otra, testProduct(), draftList(), false,
	)
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)
}

func TestValidate_ProductoDeOtroPropietario_Rechaza(t *testing.T) {
	otro := testProduct()
	otro.OwnerID = "otro-owner"
	_, err := purchase.Validate(
		purchase.Candidate{Qty: strPtr("1")},
		kiloUnit(), otro, draftList(), false,
	)
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)
}

func TestValidate_ReferenciasNil_Rechaza(t *testing.T) {
	_, err := purchase.Validate(purchase.Candidate{Qty: strPtr("1")}, nil, testProduct(), draftList(), false)
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)

	_, err = purchase.Validate(purchase.Candidate{Qty: strPtr("1")}, kiloUnit(), nil, draftList(), false)
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)
}

// ── Caso feliz completo ───────────────────────────────────────────────────────

func TestValidate_CasoFeliz_NoMonetariaConPrecio(t *testing.T) {
	out, err := purchase.Validate(
		purchase.Candidate{Qty: strPtr("3"), Price: strPtr("12.00")},
		kiloUnit(), testProduct(), draftList(), true,
	)
	require.NoError(t, err)
	require.NotNil(t, out.Price)
	assert.Equal(t, "3", out.Qty.String())
	assert.Equal(t, "12", out.Price.String())
}
