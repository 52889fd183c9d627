package entity

import "time"

// Tipos de unidad del catálogo.
const (
	UnitKindMass     = "mass"
	UnitKindCount    = "count"
	UnitKindCurrency = "currency"
	UnitKindPackage  = "package"
	UnitKindOther    = "other"
)

// Unit representa una unidad de medida del catálogo (ej. 'Kilogramo', 'Unidad', 'Soles').
// IsCurrency es autoritativo: si es true, la cantidad del ítem ES el importe en S/
// y no se deriva del campo Kind.
type Unit struct {
	ID         string
	OwnerID    string
	Name       string // único por propietario
	Kind       string // mass, count, currency, package, other
	Symbol     string // ej. 'kg', 'uni', 'S/' (vacío = sin símbolo)
	IsCurrency bool
	CreatedAt  time.Time
}

// Label devuelve la etiqueta de presentación: símbolo, si no nombre, si no un guion.
func (u *Unit) Label() string {
	if u == nil {
		return "—"
	}
	if u.Symbol != "" {
		return u.Symbol
	}
	if u.Name != "" {
		return u.Name
	}
	return "—"
}
