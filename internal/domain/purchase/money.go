// Package purchase contiene las reglas puras de negocio de las listas de
// compra: parseo y validación de líneas, y el cálculo de subtotales con
// redondeo monetario. No toca persistencia ni red.
package purchase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// Round2 redondea un monto a 2 decimales, half-up.
// Es la única regla de redondeo del sistema; todo total derivado es suma de
// subtotales ya redondeados y vuelve a redondearse tras cada acumulación.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Subtotal calcula el subtotal de una línea.
//   - Unidad monetaria: el subtotal ES la cantidad, redondeada a 2 decimales.
//   - Unidad no monetaria: qty × price a precisión completa y se redondea
//     SOLO el producto (nunca los factores), para no acumular error.
//
// Un price nil se trata como cero: en una lista finalizada no ocurre
// (ensureComplete lo garantiza), pero el cálculo no debe fallar.
func Subtotal(qty decimal.Decimal, price *decimal.Decimal, isCurrency bool) decimal.Decimal {
	if isCurrency {
		return Round2(qty)
	}
	p := decimal.Zero
	if price != nil {
		p = *price
	}
	return Round2(qty.Mul(p))
}

// ItemSubtotal calcula el subtotal de un ítem resolviendo la regla desde su unidad.
func ItemSubtotal(item *entity.PurchaseListItem, unit *entity.Unit) decimal.Decimal {
	isCurrency := unit != nil && unit.IsCurrency
	return Subtotal(item.Qty, item.PriceSoles, isCurrency)
}
