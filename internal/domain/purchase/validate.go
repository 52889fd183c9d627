package purchase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// Candidate es la línea cruda tal como llega del borde HTTP: cantidad y precio
// como texto sin interpretar. El parseo es explícito y un valor inválido se
// rechaza siempre; nunca se degrada en silencio a cero.
type Candidate struct {
	Qty   *string
	Price *string // nil = no enviado
}

// Normalized es la línea ya validada y tipada, lista para persistir.
// Price puede haber sido anulado por la regla de unidad monetaria.
type Normalized struct {
	Qty   decimal.Decimal
	Price *decimal.Decimal
}

// ParseQty parsea una cantidad. Rechaza nil, texto no numérico y negativos.
func ParseQty(raw *string) (decimal.Decimal, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	if d.IsNegative() {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	return d, nil
}

// ParsePrice parsea un precio opcional. nil se conserva como nil; un texto no
// numérico o negativo se rechaza.
func ParsePrice(raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}
	if d.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}
	return &d, nil
}

// Validate aplica las reglas de aceptación de una línea, en orden:
//
//  1. La lista final es inmutable.
//  2. Unidad y producto deben existir y pertenecer al mismo propietario que la lista.
//  3. La cantidad debe parsear a un decimal no negativo.
//  4. Unidad monetaria: el precio se fuerza a nil (qty ya es el importe); no es error.
//  5. Unidad no monetaria: en borrador el precio puede faltar; al finalizar
//     (finalizing=true) es obligatorio. Si viene, debe ser un decimal válido.
//
// Es una función pura: no persiste nada.
func Validate(c Candidate, unit *entity.Unit, product *entity.Product, list *entity.PurchaseList, finalizing bool) (Normalized, error) {
	var out Normalized

	if list == nil {
		return out, domain.ErrInvalidInput
	}
	if list.IsFinal() {
		return out, domain.ErrListFinalized
	}
	if unit == nil {
		return out, domain.ErrInvalidUnit
	}
	if product == nil {
		return out, domain.ErrInvalidProduct
	}
	if unit.OwnerID != list.OwnerID {
		return out, domain.ErrInvalidUnit
	}
	if product.OwnerID != list.OwnerID {
		return out, domain.ErrInvalidProduct
	}

	qty, err := ParseQty(c.Qty)
	if err != nil {
		return out, err
	}
	out.Qty = qty

	if unit.IsCurrency {
		// qty es el importe; cualquier precio enviado se descarta sin error.
		out.Price = nil
		return out, nil
	}

	price, err := ParsePrice(c.Price)
	if err != nil {
		return out, err
	}
	if finalizing && price == nil {
		return out, domain.ErrMissingPrice
	}
	out.Price = price
	return out, nil
}
