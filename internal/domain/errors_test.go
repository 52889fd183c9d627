package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Compras-api/internal/domain"
)

// TestIncompletePricingError_TruncaADiez verifica el tope de 10 nombres y el
// sufijo "+N más" del mensaje.
func TestIncompletePricingError_TruncaADiez(t *testing.T) {
	var products []string
	for i := 1; i <= 13; i++ {
		products = append(products, fmt.Sprintf("Producto %02d", i))
	}

	err := domain.NewIncompletePricingError(products)

	assert.Len(t, err.Products, 10)
	assert.Equal(t, 3, err.Truncated)
	assert.Contains(t, err.Error(), "Producto 10")
	assert.NotContains(t, err.Error(), "Producto 11")
	assert.Contains(t, err.Error(), "(+3 más)")
}

func TestIncompletePricingError_SinTruncar(t *testing.T) {
	err := domain.NewIncompletePricingError([]string{"Tomate", "Cebolla"})
	assert.Equal(t, "faltan precios para: Tomate, Cebolla", err.Error())
	assert.Zero(t, err.Truncated)
}

// TestIncompletePricingError_ErrorsIs: el error estructurado debe reconocerse
// con el centinela para el mapeo en el borde HTTP.
func TestIncompletePricingError_ErrorsIs(t *testing.T) {
	err := domain.NewIncompletePricingError([]string{"Tomate"})
	assert.True(t, errors.Is(err, domain.ErrIncompletePricing))

	var ipe *domain.IncompletePricingError
	assert.True(t, errors.As(error(err), &ipe))
}
