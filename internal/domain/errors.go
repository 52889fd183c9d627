package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")

	// Ciclo de vida de listas de compra.
	ErrListFinalized    = errors.New("la lista está finalizada y no admite cambios")
	ErrAlreadyFinalized = errors.New("la lista ya fue finalizada")

	// Validación de ítems.
	ErrInvalidQuantity = errors.New("cantidad inválida: se requiere un decimal no negativo")
	ErrInvalidPrice    = errors.New("precio inválido: no es un decimal válido")
	ErrMissingPrice    = errors.New("precio requerido para unidad no monetaria al finalizar")
	ErrInvalidUnit     = errors.New("unidad inválida")
	ErrInvalidProduct  = errors.New("producto inválido")
	ErrNotOwned        = errors.New("el recurso pertenece a otro propietario")

	// Violación de unicidad al confirmar (ej. series_code duplicado).
	// El llamador puede reintentar la operación; nunca se reintenta internamente.
	ErrIntegrityConflict = errors.New("conflicto de integridad en la confirmación")

	// Centinela para errors.Is sobre IncompletePricingError.
	ErrIncompletePricing = errors.New("la lista tiene ítems sin precio")
)

// maxMissingNames tope de nombres de producto reportados en IncompletePricingError.
const maxMissingNames = 10

// IncompletePricingError bloquea finalize/complete cuando hay ítems no
// monetarios sin price_soles. Products trae a lo sumo 10 nombres; Truncated
// indica cuántos más quedaron fuera del mensaje.
type IncompletePricingError struct {
	Products  []string
	Truncated int
}

// NewIncompletePricingError recorta la lista de nombres al tope del mensaje.
func NewIncompletePricingError(products []string) *IncompletePricingError {
	e := &IncompletePricingError{Products: products}
	if len(products) > maxMissingNames {
		e.Products = products[:maxMissingNames]
		e.Truncated = len(products) - maxMissingNames
	}
	return e
}

func (e *IncompletePricingError) Error() string {
	msg := "faltan precios para: " + strings.Join(e.Products, ", ")
	if e.Truncated > 0 {
		msg += fmt.Sprintf(" (+%d más)", e.Truncated)
	}
	return msg
}

// Unwrap permite errors.Is(err, ErrIncompletePricing).
func (e *IncompletePricingError) Unwrap() error { return ErrIncompletePricing }
